package entity

import "time"

// FileResult — итог обработки одного входного файла: артефакт или ошибка.
type FileResult struct {
	Source      string
	Mode        Mode
	Artifact    *Artifact
	Statistics  *Statistics
	Err         error
	ProcessedAt time.Time
}

// Failed сообщает, что файл не обработан.
func (r *FileResult) Failed() bool {
	return r.Err != nil
}

// Warned сообщает, что файл создан, но с предупреждениями.
func (r *FileResult) Warned() bool {
	return r.Err == nil && r.Artifact != nil && len(r.Artifact.Warnings) > 0
}

// Summary — итог пакетного запуска.
type Summary struct {
	Mode     Mode
	Total    int
	Produced int
	Failed   int
	Warned   int
}

// Add учитывает результат одного файла.
func (s *Summary) Add(r *FileResult) {
	s.Total++
	if r.Failed() {
		s.Failed++
		return
	}
	s.Produced++
	if r.Warned() {
		s.Warned++
	}
}
