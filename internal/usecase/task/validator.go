package task

import (
	"fmt"
	"strings"
	"time"

	appErrors "taskboard/pkg/errors"
	"taskboard/pkg/utils"
)

// MaxImageSize is the largest accepted upload, 2 MiB.
const MaxImageSize = 2 << 20

var dueDateFormats = []string{time.RFC3339, "2006-01-02"}

// validateRequest checks the task fields and parses the optional due date.
func validateRequest(req *TaskRequest) (*time.Time, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewValidationError(err)
	}

	if req.DueDate == "" {
		return nil, nil
	}

	for _, layout := range dueDateFormats {
		if t, err := time.Parse(layout, req.DueDate); err == nil {
			return &t, nil
		}
	}

	return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input",
		fmt.Errorf("dueDate must be RFC 3339 or YYYY-MM-DD"))
}

// validateUpload enforces the image MIME prefix and size cap.
func validateUpload(upload *ImageUpload) error {
	if upload == nil {
		return nil
	}

	if !strings.HasPrefix(upload.ContentType, "image/") {
		return appErrors.NewAppError("INVALID_UPLOAD", "Only image files are allowed", nil)
	}
	if len(upload.Data) == 0 {
		return appErrors.NewAppError("INVALID_UPLOAD", "Uploaded file is empty", nil)
	}
	if len(upload.Data) > MaxImageSize {
		return appErrors.NewAppError("INVALID_UPLOAD", "Image exceeds the 2MB limit", nil)
	}

	return nil
}
