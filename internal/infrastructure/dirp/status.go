package dirp

import "fmt"

// Status — код возврата функций dirp_*.
type Status int32

const statusSuccess Status = 0

var statusText = map[Status]string{
	-1:  "memory allocation failed",
	-2:  "null pointer",
	-3:  "invalid parameters",
	-4:  "invalid raw data",
	-5:  "invalid header",
	-6:  "invalid curve",
	-7:  "rjpeg parse failed",
	-8:  "invalid size",
	-9:  "invalid handle",
	-10: "unsupported input format",
	-11: "unsupported output format",
	-12: "unsupported function",
	-13: "not ready",
	-14: "activation required",
}

func (s Status) Error() string {
	if text, ok := statusText[s]; ok {
		return fmt.Sprintf("dirp status %d: %s", int32(s), text)
	}
	return fmt.Sprintf("dirp status %d", int32(s))
}

// check превращает код возврата в ошибку с именем вызова.
func check(call string, rc int32) error {
	if Status(rc) == statusSuccess {
		return nil
	}
	return fmt.Errorf("%s: %w", call, Status(rc))
}
