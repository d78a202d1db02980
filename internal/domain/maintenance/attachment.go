package maintenance

import (
	"strings"
	"time"
)

// Attachment records a stored file against a ticket and, optionally, the
// event it was uploaded with. Attachments are never modified.
type Attachment struct {
	id         uint
	ticketID   uint
	eventID    *uint
	uploadedBy uint
	filePath   string
	fileName   string
	fileType   string
	fileSize   *int64
	subfolder  string
	uploadedAt time.Time
}

// FileRef describes a file already written by the storage adapter.
type FileRef struct {
	Path      string
	Name      string
	Type      string
	Size      *int64
	Subfolder string
}

// NewAttachment validates a binding of ref to ticketID.
func NewAttachment(ticketID, uploadedBy uint, ref FileRef, eventID *uint, now time.Time) (*Attachment, error) {
	if ticketID == 0 || uploadedBy == 0 ||
		strings.TrimSpace(ref.Path) == "" || strings.TrimSpace(ref.Name) == "" {
		return nil, ErrInvalidAttachment
	}
	return &Attachment{
		ticketID:   ticketID,
		eventID:    eventID,
		uploadedBy: uploadedBy,
		filePath:   ref.Path,
		fileName:   ref.Name,
		fileType:   ref.Type,
		fileSize:   ref.Size,
		subfolder:  ref.Subfolder,
		uploadedAt: now,
	}, nil
}

// ReconstructAttachment rebuilds a persisted attachment.
func ReconstructAttachment(
	id, ticketID uint,
	eventID *uint,
	uploadedBy uint,
	ref FileRef,
	uploadedAt time.Time,
) *Attachment {
	return &Attachment{
		id:         id,
		ticketID:   ticketID,
		eventID:    eventID,
		uploadedBy: uploadedBy,
		filePath:   ref.Path,
		fileName:   ref.Name,
		fileType:   ref.Type,
		fileSize:   ref.Size,
		subfolder:  ref.Subfolder,
		uploadedAt: uploadedAt,
	}
}

func (a *Attachment) ID() uint { return a.id }
func (a *Attachment) TicketID() uint { return a.ticketID }
func (a *Attachment) EventID() *uint { return a.eventID }
func (a *Attachment) UploadedBy() uint { return a.uploadedBy }
func (a *Attachment) FilePath() string { return a.filePath }
func (a *Attachment) FileName() string { return a.fileName }
func (a *Attachment) FileType() string { return a.fileType }
func (a *Attachment) FileSize() *int64 { return a.fileSize }
func (a *Attachment) Subfolder() string { return a.subfolder }
func (a *Attachment) UploadedAt() time.Time { return a.uploadedAt }

// SetID assigns the storage id after insert.
func (a *Attachment) SetID(id uint) {
	if a.id == 0 {
		a.id = id
	}
}
