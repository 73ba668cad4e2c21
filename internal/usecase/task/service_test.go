package task

import (
	"context"
	"fmt"
	"os"
	"testing"

	"taskboard/internal/config"
	domainTask "taskboard/internal/domain/task"
	"taskboard/internal/logger"
	appErrors "taskboard/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Init("development"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeTaskRepo struct {
	tasks map[uuid.UUID]*domainTask.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*domainTask.Task)}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *domainTask.Task) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	if task.Priority == "" {
		task.Priority = domainTask.PriorityMedium
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, taskID, ownerID uuid.UUID) (*domainTask.Task, error) {
	task, ok := r.tasks[taskID]
	if !ok || task.UserID != ownerID {
		return nil, domainTask.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*domainTask.Task, error) {
	var result []*domainTask.Task
	for _, task := range r.tasks {
		if task.UserID == ownerID {
			copied := *task
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *domainTask.Task) error {
	existing, ok := r.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return domainTask.ErrTaskNotFound
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, taskID, ownerID uuid.UUID) error {
	existing, ok := r.tasks[taskID]
	if !ok || existing.UserID != ownerID {
		return domainTask.ErrTaskNotFound
	}
	delete(r.tasks, taskID)
	return nil
}

type fakeImageStore struct {
	files   map[string][]byte
	counter int
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{files: make(map[string][]byte)}
}

func (s *fakeImageStore) Save(_ context.Context, ext string, data []byte) (string, error) {
	s.counter++
	filename := fmt.Sprintf("task_%d%s", s.counter, ext)
	s.files[filename] = data
	return filename, nil
}

func (s *fakeImageStore) Delete(_ context.Context, filename string) error {
	if _, ok := s.files[filename]; !ok {
		return domainTask.ErrImageNotFound
	}
	delete(s.files, filename)
	return nil
}

func newTestService(repo domainTask.Repository, images domainTask.ImageStore) *Service {
	cfg := &config.Config{
		Storage: config.StorageConfig{
			UploadDir: "uploads",
			BaseURL:   "http://localhost:8080/uploads",
		},
	}
	return NewService(repo, images, cfg)
}

func pngUpload() *ImageUpload {
	return &ImageUpload{
		Filename:    "photo.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	}
}

func TestCreateTask(t *testing.T) {
	ownerID := uuid.New()
	service := newTestService(newFakeTaskRepo(), newFakeImageStore())

	response, err := service.CreateTask(context.Background(), ownerID, &TaskRequest{
		Title:    "Write report",
		Priority: "high",
		DueDate:  "2026-09-15",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Write report", response.Title)
	assert.Equal(t, "high", response.Priority)
	require.NotNil(t, response.DueDate)
	assert.Equal(t, "2026-09-15", response.DueDate.Format("2006-01-02"))
	assert.Nil(t, response.Image)
}

func TestCreateTaskDefaultPriority(t *testing.T) {
	service := newTestService(newFakeTaskRepo(), newFakeImageStore())

	response, err := service.CreateTask(context.Background(), uuid.New(), &TaskRequest{
		Title: "Write report",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "medium", response.Priority)
}

func TestCreateTaskWithImage(t *testing.T) {
	images := newFakeImageStore()
	service := newTestService(newFakeTaskRepo(), images)

	response, err := service.CreateTask(context.Background(), uuid.New(), &TaskRequest{
		Title: "Write report",
	}, pngUpload())
	require.NoError(t, err)

	require.NotNil(t, response.Image)
	assert.Equal(t, "http://localhost:8080/uploads/task_1.png", *response.Image)
	assert.Len(t, images.files, 1)
}

func TestCreateTaskInvalidDueDate(t *testing.T) {
	service := newTestService(newFakeTaskRepo(), newFakeImageStore())

	_, err := service.CreateTask(context.Background(), uuid.New(), &TaskRequest{
		Title:   "Write report",
		DueDate: "next tuesday",
	}, nil)
	assert.True(t, appErrors.IsValidation(err))
}

func TestCreateTaskRejectsNonImageUpload(t *testing.T) {
	images := newFakeImageStore()
	service := newTestService(newFakeTaskRepo(), images)

	_, err := service.CreateTask(context.Background(), uuid.New(), &TaskRequest{
		Title: "Write report",
	}, &ImageUpload{
		Filename:    "notes.txt",
		ContentType: "text/plain",
		Data:        []byte("hello"),
	})
	assert.True(t, appErrors.IsValidation(err))
	assert.Empty(t, images.files)
}

func TestCreateTaskRejectsOversizedUpload(t *testing.T) {
	service := newTestService(newFakeTaskRepo(), newFakeImageStore())

	upload := pngUpload()
	upload.Data = make([]byte, MaxImageSize+1)

	_, err := service.CreateTask(context.Background(), uuid.New(), &TaskRequest{
		Title: "Write report",
	}, upload)
	assert.True(t, appErrors.IsValidation(err))
}

func TestGetTaskOwnership(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()
	service := newTestService(newFakeTaskRepo(), newFakeImageStore())

	created, err := service.CreateTask(context.Background(), ownerID, &TaskRequest{Title: "Write report"}, nil)
	require.NoError(t, err)

	_, err = service.GetTask(context.Background(), created.ID, ownerID)
	assert.NoError(t, err)

	// Another user sees the same response as for a task that does not exist.
	_, err = service.GetTask(context.Background(), created.ID, otherID)
	assert.ErrorIs(t, err, domainTask.ErrTaskNotFound)
}

func TestListTasksScopedToOwner(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()
	service := newTestService(newFakeTaskRepo(), newFakeImageStore())

	_, err := service.CreateTask(context.Background(), ownerID, &TaskRequest{Title: "Mine"}, nil)
	require.NoError(t, err)
	_, err = service.CreateTask(context.Background(), otherID, &TaskRequest{Title: "Theirs"}, nil)
	require.NoError(t, err)

	responses, err := service.ListTasks(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "Mine", responses[0].Title)
}

func TestUpdateTaskReplacesImage(t *testing.T) {
	ownerID := uuid.New()
	images := newFakeImageStore()
	service := newTestService(newFakeTaskRepo(), images)

	created, err := service.CreateTask(context.Background(), ownerID, &TaskRequest{Title: "Write report"}, pngUpload())
	require.NoError(t, err)

	updated, err := service.UpdateTask(context.Background(), created.ID, ownerID, &TaskRequest{
		Title: "Write final report",
	}, &ImageUpload{
		Filename:    "photo.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg-bytes"),
	})
	require.NoError(t, err)

	// The old file is gone, only the replacement remains.
	require.Len(t, images.files, 1)
	_, hasOld := images.files["task_1.png"]
	assert.False(t, hasOld)
	require.NotNil(t, updated.Image)
	assert.Equal(t, "http://localhost:8080/uploads/task_2.jpg", *updated.Image)
}

func TestUpdateTaskKeepsImageWithoutUpload(t *testing.T) {
	ownerID := uuid.New()
	images := newFakeImageStore()
	service := newTestService(newFakeTaskRepo(), images)

	created, err := service.CreateTask(context.Background(), ownerID, &TaskRequest{Title: "Write report"}, pngUpload())
	require.NoError(t, err)

	updated, err := service.UpdateTask(context.Background(), created.ID, ownerID, &TaskRequest{
		Title: "Write final report",
	}, nil)
	require.NoError(t, err)

	require.NotNil(t, updated.Image)
	assert.Equal(t, *created.Image, *updated.Image)
	assert.Len(t, images.files, 1)
}

func TestUpdateTaskToleratesMissingOldFile(t *testing.T) {
	ownerID := uuid.New()
	images := newFakeImageStore()
	service := newTestService(newFakeTaskRepo(), images)

	created, err := service.CreateTask(context.Background(), ownerID, &TaskRequest{Title: "Write report"}, pngUpload())
	require.NoError(t, err)

	// Simulate the file disappearing out from under the record.
	delete(images.files, "task_1.png")

	_, err = service.UpdateTask(context.Background(), created.ID, ownerID, &TaskRequest{
		Title: "Write final report",
	}, pngUpload())
	assert.NoError(t, err)
}

func TestUpdateTaskOwnership(t *testing.T) {
	ownerID := uuid.New()
	service := newTestService(newFakeTaskRepo(), newFakeImageStore())

	created, err := service.CreateTask(context.Background(), ownerID, &TaskRequest{Title: "Write report"}, nil)
	require.NoError(t, err)

	_, err = service.UpdateTask(context.Background(), created.ID, uuid.New(), &TaskRequest{
		Title: "Hijacked",
	}, nil)
	assert.ErrorIs(t, err, domainTask.ErrTaskNotFound)
}

func TestDeleteTaskRemovesImage(t *testing.T) {
	ownerID := uuid.New()
	images := newFakeImageStore()
	repo := newFakeTaskRepo()
	service := newTestService(repo, images)

	created, err := service.CreateTask(context.Background(), ownerID, &TaskRequest{Title: "Write report"}, pngUpload())
	require.NoError(t, err)

	require.NoError(t, service.DeleteTask(context.Background(), created.ID, ownerID))
	assert.Empty(t, images.files)
	assert.Empty(t, repo.tasks)
}

func TestDeleteTaskOwnership(t *testing.T) {
	ownerID := uuid.New()
	repo := newFakeTaskRepo()
	service := newTestService(repo, newFakeImageStore())

	created, err := service.CreateTask(context.Background(), ownerID, &TaskRequest{Title: "Write report"}, nil)
	require.NoError(t, err)

	err = service.DeleteTask(context.Background(), created.ID, uuid.New())
	assert.ErrorIs(t, err, domainTask.ErrTaskNotFound)
	assert.Len(t, repo.tasks, 1)
}
