// Package model contains data structures for the resolved search configuration, the search task/result DTO and the error taxonomy
package model

import "errors"

// CaseInsensitiveEnv - presence of this variable switches search to case-insensitive mode when no explicit token is given
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

var (
	ErrInsufficientArguments = errors.New("not enough arguments: usage minigrep <query> <filename> [case_sensitive]")
	ErrMissingQuery          = errors.New("didn't receive a query string")
	ErrMissingFilename       = errors.New("didn't receive a file name")
	ErrFileRead              = errors.New("failed to read file")
)

// Config - resolved launch parameters, passed by value and never changed after construction
type Config struct {
	Query         string `json:"query"`
	Filename      string `json:"filename"`
	CaseSensitive bool   `json:"case_sensitive"`
}

type Task struct {
	TaskID   string `json:"tid"`
	Config   Config `json:"config"`
	Contents string `json:"-"` // полный текст файла, строки результата ссылаются на него
}

type Result struct {
	TaskID  string   `json:"tid"`
	HashSum uint64   `json:"hash"`
	Output  []string `json:"output"`
}
