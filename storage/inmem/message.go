package inmemdb

import (
	"context"

	"github.com/trezcool/mentorhub/core/message"
)

type messageRepository struct {
	db *table[message.Message]
}

var _ message.Repository = (*messageRepository)(nil)

func NewMessageRepository(db *DB) message.Repository {
	return &messageRepository{db: db.messages}
}

func (repo *messageRepository) QueryAllMessages(_ context.Context) ([]message.Message, error) {
	return repo.db.all(), nil
}

func (repo *messageRepository) GetMessageByID(_ context.Context, id string) (message.Message, error) {
	if msg, ok := repo.db.get(id); ok {
		return msg, nil
	}
	return message.Message{}, message.ErrNotFound
}

func (repo *messageRepository) PrependMessage(_ context.Context, msg message.Message) (message.Message, error) {
	return repo.db.prepend(msg), nil
}

func (repo *messageRepository) UpdateMessage(_ context.Context, msg message.Message) (message.Message, error) {
	if !repo.db.replace(msg) {
		return message.Message{}, message.ErrNotFound
	}
	return msg, nil
}
