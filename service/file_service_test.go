package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"calc-api/domain"
	"calc-api/repository"
)

func newTestFileService(t *testing.T, duration time.Duration) *FileService {
	t.Helper()
	s := NewFileService(
		repository.NewJobRepositoryMemory(0),
		NewCountdown(duration, 4),
		FileLimits{MaxPDFBytes: 1 << 20, MaxImageBytes: 1 << 10},
		zap.NewNop(),
	)
	t.Cleanup(s.Close)
	return s
}

func waitForStatus(t *testing.T, s *FileService, id string, status domain.JobStatus) domain.FileJob {
	t.Helper()
	var job domain.FileJob
	require.Eventually(t, func() bool {
		var err error
		job, err = s.Status(context.Background(), id)
		return err == nil && job.Status == status
	}, 2*time.Second, 5*time.Millisecond)
	return job
}

func TestFileService_CompletesAndDownloads(t *testing.T) {
	defer goleak.VerifyNone(t)
	s := newTestFileService(t, 20*time.Millisecond)

	job, err := s.Submit(context.Background(), domain.OpAddPageNumbers,
		Upload{Name: "report.pdf", Size: 2048, ContentType: "application/pdf"},
		map[string]string{"position": "bottom-center"})
	require.NoError(t, err)
	assert.Equal(t, domain.JobProcessing, job.Status)
	assert.Equal(t, "report_numbered.pdf", job.OutputName)

	_, _, err = s.Download(context.Background(), job.ID)
	if err != nil {
		assert.ErrorIs(t, err, ErrJobNotReady)
	}

	done := waitForStatus(t, s, job.ID, domain.JobCompleted)
	assert.Equal(t, 100, done.Progress)
	require.NotNil(t, done.FinishedAt)

	name, content, err := s.Download(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, "report_numbered.pdf", name)
	assert.Contains(t, string(content), "No document processing was performed")
}

func TestFileService_Cancel(t *testing.T) {
	defer goleak.VerifyNone(t)
	s := newTestFileService(t, 10*time.Second)

	job, err := s.Submit(context.Background(), domain.OpRotate,
		Upload{Name: "scan.PDF", Size: 10, ContentType: "application/octet-stream"},
		map[string]string{"angle": "90"})
	require.NoError(t, err)

	cancelled, err := s.Cancel(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobCancelled, cancelled.Status)
	assert.Less(t, cancelled.Progress, 100)

	_, _, err = s.Download(context.Background(), job.ID)
	assert.ErrorIs(t, err, ErrJobNotReady)
}

func TestFileService_JPGToPDF(t *testing.T) {
	s := newTestFileService(t, 10*time.Millisecond)

	job, err := s.Submit(context.Background(), domain.OpJPGToPDF,
		Upload{Name: "photo.jpeg", Size: 512, ContentType: "image/jpeg"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "photo.pdf", job.OutputName)
}

func TestFileService_RejectsUploads(t *testing.T) {
	s := newTestFileService(t, 10*time.Millisecond)
	ctx := context.Background()

	cases := []struct {
		name    string
		op      string
		upload  Upload
		options map[string]string
		want    error
	}{
		{"unknown op", "merge", Upload{Name: "a.pdf", Size: 1}, nil, ErrUnsupportedOperation},
		{"empty", domain.OpRotate, Upload{Name: "a.pdf"}, nil, ErrEmptyFile},
		{"wrong type", domain.OpRotate, Upload{Name: "a.docx", Size: 1, ContentType: "application/msword"}, nil, ErrUnsupportedFileType},
		{"pdf to image op", domain.OpJPGToPDF, Upload{Name: "a.pdf", Size: 1, ContentType: "application/pdf"}, nil, ErrUnsupportedFileType},
		{"too large", domain.OpRotate, Upload{Name: "a.pdf", Size: 2 << 20}, nil, ErrFileTooLarge},
		{"image too large", domain.OpJPGToPDF, Upload{Name: "a.jpg", Size: 2048}, nil, ErrFileTooLarge},
		{"bad angle", domain.OpRotate, Upload{Name: "a.pdf", Size: 1}, map[string]string{"angle": "45"}, ErrInvalidOption},
		{"missing password", domain.OpProtect, Upload{Name: "a.pdf", Size: 1}, nil, ErrInvalidOption},
		{"bad pages", domain.OpDeletePages, Upload{Name: "a.pdf", Size: 1}, map[string]string{"pages": "3-1"}, ErrInvalidOption},
		{"missing pages", domain.OpDeletePages, Upload{Name: "a.pdf", Size: 1}, nil, ErrInvalidOption},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Submit(ctx, tc.op, tc.upload, tc.options)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFileService_ProtectDropsPassword(t *testing.T) {
	s := newTestFileService(t, 10*time.Millisecond)

	job, err := s.Submit(context.Background(), domain.OpProtect,
		Upload{Name: "secret.pdf", Size: 100, ContentType: "application/pdf"},
		map[string]string{"password": "hunter2"})
	require.NoError(t, err)
	assert.NotContains(t, job.Options, "password")

	stored, err := s.Status(context.Background(), job.ID)
	require.NoError(t, err)
	assert.NotContains(t, stored.Options, "password")
}

func TestFileService_UnknownJob(t *testing.T) {
	s := newTestFileService(t, 10*time.Millisecond)

	_, err := s.Status(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = s.Cancel(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestCheckDeleteOptions(t *testing.T) {
	assert.NoError(t, checkDeleteOptions(map[string]string{"pages": "1, 3-5,9"}))
	assert.Error(t, checkDeleteOptions(map[string]string{"pages": "0"}))
	assert.Error(t, checkDeleteOptions(map[string]string{"pages": "a-b"}))
}

func TestCatalog_ListsFileOperations(t *testing.T) {
	paths := map[string]bool{}
	for _, tool := range Catalog() {
		paths[tool.Path] = true
	}
	for _, op := range FileOperations() {
		assert.True(t, paths["/pdf/"+op], op)
	}
	assert.True(t, paths["/loan/calculate"])
}
