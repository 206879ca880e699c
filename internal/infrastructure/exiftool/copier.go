package exiftool

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"thermal-report/internal/domain/port"
)

// DefaultTool — имя exiftool в PATH.
const DefaultTool = "exiftool"

// Copier переносит теги из исходного снимка в растр через exiftool.
type Copier struct {
	tool string
}

// NewCopier создаёт копировщик. Пустой tool означает DefaultTool.
func NewCopier(tool string) *Copier {
	if tool == "" {
		tool = DefaultTool
	}
	return &Copier{tool: tool}
}

// CopyTags переписывает dst на месте, без файла dst_original.
func (c *Copier) CopyTags(ctx context.Context, src, dst string) error {
	cmd := exec.CommandContext(ctx, c.tool, "-overwrite_original", "-TagsFromFile", src, "-all:all", dst)
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return fmt.Errorf("%s: %w", c.tool, err)
		}
		return fmt.Errorf("%s: %w: %s", c.tool, err, msg)
	}
	return nil
}

var _ port.MetadataCopier = (*Copier)(nil)
