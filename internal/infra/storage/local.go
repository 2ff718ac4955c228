package storage

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalImageStore は商品画像をローカルの/static配下に保存する。
// ファイル名はuuidを前置して衝突を避ける。
type LocalImageStore struct {
	dir string
}

// DI
func NewLocalImageStore(dir string) *LocalImageStore {
	return &LocalImageStore{dir: dir}
}

func (s *LocalImageStore) Save(filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + "_" + filepath.Base(filename)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}

	//DBにはスラッシュ区切りの相対パスで持つ
	return filepath.ToSlash(path), nil
}

func (s *LocalImageStore) Remove(path string) error {
	if _, err := os.Stat(path); err != nil {
		//既に無ければ何もしない
		return nil
	}
	return os.Remove(path)
}
