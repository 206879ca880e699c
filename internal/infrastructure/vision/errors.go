package vision

import "errors"

// ErrVisionDisabled возвращается адаптерами, собранными без тега gocv.
var ErrVisionDisabled = errors.New("gocv build tag is not enabled")
