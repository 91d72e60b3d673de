package infrastructure

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
)

// randomPartLen — длина случайной части имени объекта.
const randomPartLen = 13

// GetExtensionFromMIME возвращает расширение файла по MIME-типу изображения.
// Поддерживает jpeg, jpg, png, webp. Возвращает ошибку e.ErrUnsupportedMediaType для неподдерживаемых типов.
func GetExtensionFromMIME(mime string) (string, error) {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "jpg", nil
	case "image/png":
		return "png", nil
	case "image/webp":
		return "webp", nil
	default:
		return "bin", e.ErrUnsupportedMediaType
	}
}

// ImageExtension берёт расширение из имени файла, иначе из MIME-типа.
func ImageExtension(name, mime string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	switch ext {
	case "jpg", "jpeg", "png", "webp":
		return ext, nil
	}

	return GetExtensionFromMIME(mime)
}

// BuildObjectKey строит ключ вида folder/<unix-millis>_<random>.<ext>.
// random очищается от дефисов и обрезается до фиксированной длины.
func BuildObjectKey(folder string, now time.Time, random, ext string) string {
	random = strings.ReplaceAll(random, "-", "")
	if len(random) > randomPartLen {
		random = random[:randomPartLen]
	}

	name := fmt.Sprintf("%d_%s.%s", now.UnixMilli(), random, ext)

	folder = CleanFolder(folder)
	if folder == "" {
		return name
	}

	return folder + "/" + name
}

// CleanFolder нормализует папку: без ведущих и завершающих слешей и без «..».
func CleanFolder(folder string) string {
	parts := strings.Split(folder, "/")
	clean := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == "." || p == ".." {
			continue
		}
		clean = append(clean, p)
	}

	return strings.Join(clean, "/")
}
