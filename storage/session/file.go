package sessionstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/trezcool/mentorhub/core/auth"
	"github.com/trezcool/mentorhub/core/user"
)

// FileStore keeps the session of a local client as a JSON file named after the session key.
// The file holds the serialized user; the key doubles as the session id.
type FileStore struct {
	key  string
	path string
}

var _ auth.Store = (*FileStore)(nil)

func NewFileStore(dir, key string) *FileStore {
	return &FileStore{key: key, path: filepath.Join(dir, key+".json")}
}

func (fs *FileStore) Path() string {
	return fs.path
}

func (fs *FileStore) Load() (auth.Session, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return auth.Session{}, auth.ErrNoSession
		}
		return auth.Session{}, errors.Wrap(err, "reading session file")
	}
	var usr user.User
	if err = json.Unmarshal(data, &usr); err != nil {
		return auth.Session{}, auth.ErrNoSession
	}
	return auth.Session{ID: fs.key, User: usr}, nil
}

func (fs *FileStore) Save(sess auth.Session) error {
	data, err := json.MarshalIndent(sess.User, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling user")
	}
	if err = os.MkdirAll(filepath.Dir(fs.path), 0o700); err != nil {
		return errors.Wrap(err, "creating session dir")
	}
	return errors.Wrap(os.WriteFile(fs.path, data, 0o600), "writing session file")
}

func (fs *FileStore) Clear() error {
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing session file")
	}
	return nil
}
