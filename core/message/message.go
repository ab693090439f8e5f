package message

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/user"
)

type Type string

// Message types
const (
	TypeMessage Type = "message"
	TypeNote    Type = "note"
)

// UnknownRecipient is displayed for receivers missing from the directory.
const UnknownRecipient = "Unknown Student"

var (
	// errors
	ErrNotFound    = core.NewNotFoundError("message")
	ErrSelfMessage = errors.New("you cannot send a message to yourself")
)

type (
	// Message invariant: SenderID != ReceiverID.
	Message struct {
		ID         string    `json:"id"`
		SenderID   string    `json:"sender_id"`
		ReceiverID string    `json:"receiver_id"`
		Content    string    `json:"content"`
		Timestamp  time.Time `json:"timestamp"`
		Read       bool      `json:"read"`
		Type       Type      `json:"type"`
	}

	NewMessage struct {
		ReceiverID string `json:"receiver_id" validate:"notblank"`
		Content    string `json:"content" validate:"notblank"`
		Type       Type   `json:"type" validate:"omitempty,oneof=message note"`
	}

	// QueryFilter does a case-insensitive match on Message.Content.
	QueryFilter struct {
		Search string `query:"search"`
	}

	Repository interface {
		QueryAllMessages(ctx context.Context) ([]Message, error)
		GetMessageByID(ctx context.Context, id string) (Message, error)
		// PrependMessage stores the message first: the collection is ordered most recent first.
		PrependMessage(ctx context.Context, msg Message) (Message, error)
		UpdateMessage(ctx context.Context, msg Message) (Message, error)
	}

	// Directory resolves the users a message can be sent to.
	Directory interface {
		QueryAll(ctx context.Context) ([]user.User, error)
	}

	Service struct {
		repo     Repository
		dir      Directory
		validate *validator.Validate
		mutex    sync.Mutex
	}
)

func NewService(repo Repository, dir Directory, validate *validator.Validate) *Service {
	return &Service{repo: repo, dir: dir, validate: validate}
}

// Filter returns the messages `viewerID` sent or received.
func (svc *Service) Filter(ctx context.Context, viewerID string, filter QueryFilter) ([]Message, error) {
	all, err := svc.repo.QueryAllMessages(ctx)
	if err != nil {
		return nil, err
	}
	msgs := make([]Message, 0, len(all))
	for _, msg := range all {
		if (msg.SenderID == viewerID || msg.ReceiverID == viewerID) && core.MatchesSearch(filter.Search, msg.Content) {
			msgs = append(msgs, msg)
		}
	}
	return msgs, nil
}

func (svc *Service) Send(ctx context.Context, senderID string, nm NewMessage) (Message, error) {
	if err := core.Validate(svc.validate, nm); err != nil {
		return Message{}, err
	}
	if nm.ReceiverID == senderID {
		return Message{}, core.NewValidationError(ErrSelfMessage, core.FieldError{Field: "receiver_id", Error: ErrSelfMessage.Error()})
	}
	typ := nm.Type
	if typ == "" {
		typ = TypeMessage
	}
	msg := Message{
		ID:         core.NewID(),
		SenderID:   senderID,
		ReceiverID: nm.ReceiverID,
		Content:    core.CleanString(nm.Content),
		Timestamp:  core.NowFunc(),
		Type:       typ,
	}
	return svc.repo.PrependMessage(ctx, msg)
}

func (svc *Service) MarkAsRead(ctx context.Context, id string) (Message, error) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	msg, err := svc.repo.GetMessageByID(ctx, id)
	if err != nil {
		return Message{}, err
	}
	if msg.Read {
		return msg, nil
	}
	msg.Read = true
	return svc.repo.UpdateMessage(ctx, msg)
}

// Recipients lists who `viewer` can write to: mentors write to students, everyone else to any other user.
func (svc *Service) Recipients(ctx context.Context, viewer user.User) ([]user.User, error) {
	all, err := svc.dir.QueryAll(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]user.User, 0, len(all))
	for _, usr := range all {
		if usr.ID == viewer.ID {
			continue
		}
		if viewer.IsMentor() && !usr.IsStudent() {
			continue
		}
		users = append(users, usr)
	}
	return users, nil
}

// RecipientName returns the name of user `id`, or UnknownRecipient.
func (svc *Service) RecipientName(ctx context.Context, id string) string {
	all, err := svc.dir.QueryAll(ctx)
	if err != nil {
		return UnknownRecipient
	}
	for _, usr := range all {
		if usr.ID == id {
			return usr.Name
		}
	}
	return UnknownRecipient
}
