// Package reader loads the whole target file into memory
package reader

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/UnendingLoop/minigrep/internal/model"
)

func ReadInput(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", model.ErrFileRead, fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", fmt.Errorf("%w: specified source filename %q is a directory", model.ErrFileRead, fileName)
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", model.ErrFileRead, fileName, err)
	}
	// содержимое должно быть текстом
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w %q: invalid UTF-8", model.ErrFileRead, fileName)
	}
	return string(data), nil
}
