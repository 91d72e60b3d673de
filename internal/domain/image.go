package domain

import "github.com/DRSN-tech/storefront/pkg/e"

// MaxImageSize — максимальный размер загружаемого изображения (5 MiB).
const MaxImageSize int64 = 5 << 20

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
}

// ImageFile — файл изображения, полученный от клиента.
type ImageFile struct {
	Name        string // оригинальное имя файла
	ContentType string // заявленный Content-Type
	Size        int64
	Data        []byte
}

// Validate проверяет заявленный тип и размер файла до обращения к хранилищу.
// Содержимое файла на соответствие типу не проверяется.
func (f ImageFile) Validate() error {
	if _, ok := allowedImageTypes[f.ContentType]; !ok {
		return e.ErrUnsupportedMediaType
	}

	if f.Size > MaxImageSize {
		return e.ErrFileTooLarge
	}

	return nil
}

// Image описывает изображение, которое хранится в S3
type Image struct {
	ObjectKey    string
	Data         []byte
	Size         int64
	ContentType  string
	CacheControl string
}

// StoredImage — результат загрузки: публичный адрес и путь объекта.
type StoredImage struct {
	URL  string
	Path string
}
