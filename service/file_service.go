package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"calc-api/domain"
	"calc-api/repository"
)

var (
	ErrUnsupportedOperation = errors.New("unsupported file operation")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds the size limit")
	ErrEmptyFile            = errors.New("file is empty")
	ErrInvalidOption        = errors.New("invalid option")
	ErrJobNotFound          = errors.New("job not found")
	ErrJobNotReady          = errors.New("job has not completed")
)

// Upload describes a received file. The service only looks at its metadata.
type Upload struct {
	Name        string
	Size        int64
	ContentType string
}

type FileLimits struct {
	MaxPDFBytes   int64
	MaxImageBytes int64
}

type fileOperation struct {
	image   bool
	suffix  string
	options func(map[string]string) error
}

var fileOperations = map[string]fileOperation{
	domain.OpAddPageNumbers: {suffix: "_numbered", options: checkNumberingOptions},
	domain.OpDeletePages:    {suffix: "_trimmed", options: checkDeleteOptions},
	domain.OpRotate:         {suffix: "_rotated", options: checkRotateOptions},
	domain.OpProtect:        {suffix: "_protected", options: checkProtectOptions},
	domain.OpJPGToPDF:       {image: true},
}

// FileOperations lists the supported operation names in a stable order.
func FileOperations() []string {
	ops := make([]string, 0, len(fileOperations))
	for op := range fileOperations {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}

type runningJob struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// FileService accepts uploads and runs simulated conversions. No document
// bytes are parsed or produced; completed jobs offer a placeholder file.
type FileService struct {
	repo      repository.JobRepository
	countdown *Countdown
	limits    FileLimits
	logger    *zap.Logger
	now       func() time.Time

	ctx     context.Context
	stop    context.CancelFunc
	mu      sync.Mutex
	running map[string]*runningJob
}

func NewFileService(
	repo repository.JobRepository,
	countdown *Countdown,
	limits FileLimits,
	logger *zap.Logger,
) *FileService {
	ctx, stop := context.WithCancel(context.Background())
	return &FileService{
		repo:      repo,
		countdown: countdown,
		limits:    limits,
		logger:    logger.Named("files"),
		now:       time.Now,
		ctx:       ctx,
		stop:      stop,
		running:   make(map[string]*runningJob),
	}
}

// Close cancels every running job and waits for their terminal callbacks.
func (s *FileService) Close() {
	s.stop()

	s.mu.Lock()
	pending := make([]*runningJob, 0, len(s.running))
	for _, rj := range s.running {
		pending = append(pending, rj)
	}
	s.mu.Unlock()

	for _, rj := range pending {
		<-rj.done
	}
}

func (s *FileService) checkUpload(op fileOperation, upload Upload) error {
	if upload.Size <= 0 {
		return ErrEmptyFile
	}

	ext := strings.ToLower(filepath.Ext(upload.Name))
	mime := strings.ToLower(strings.TrimSpace(strings.Split(upload.ContentType, ";")[0]))

	limit := s.limits.MaxPDFBytes
	accepted := mime == "application/pdf" || ext == ".pdf"
	if op.image {
		limit = s.limits.MaxImageBytes
		accepted = mime == "image/jpeg" || mime == "image/jpg" || ext == ".jpg" || ext == ".jpeg"
	}

	if !accepted {
		return fmt.Errorf("%w: %s (%s)", ErrUnsupportedFileType, upload.Name, upload.ContentType)
	}
	if limit > 0 && upload.Size > limit {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, upload.Size, limit)
	}
	return nil
}

// outputName derives the download name: "<base><suffix>.pdf".
func outputName(op fileOperation, source string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if base == "" || base == "." {
		base = "document"
	}
	return base + op.suffix + ".pdf"
}

// Submit validates an upload and starts its simulated conversion.
func (s *FileService) Submit(
	ctx context.Context,
	operation string,
	upload Upload,
	options map[string]string,
) (domain.FileJob, error) {

	op, ok := fileOperations[operation]
	if !ok {
		return domain.FileJob{}, fmt.Errorf("%w: %s", ErrUnsupportedOperation, operation)
	}
	if err := s.checkUpload(op, upload); err != nil {
		return domain.FileJob{}, err
	}
	if op.options != nil {
		if err := op.options(options); err != nil {
			return domain.FileJob{}, err
		}
	}

	job := domain.FileJob{
		ID:         uuid.NewString(),
		Operation:  operation,
		SourceName: filepath.Base(upload.Name),
		SourceSize: upload.Size,
		OutputName: outputName(op, upload.Name),
		Options:    publicOptions(options),
		Status:     domain.JobProcessing,
		CreatedAt:  s.now().UTC(),
	}
	job.Summary = jobSummary(job)

	if err := s.repo.Save(ctx, job); err != nil {
		return domain.FileJob{}, fmt.Errorf("store job: %w", err)
	}

	// finish takes s.mu, so the entry is registered before it can be removed.
	rj := &runningJob{done: make(chan struct{})}
	s.mu.Lock()
	rj.cancel = s.countdown.Start(s.ctx,
		func(progress int) { s.updateProgress(job.ID, progress) },
		func(outcome Outcome) { s.finish(job.ID, outcome, rj) },
	)
	s.running[job.ID] = rj
	s.mu.Unlock()

	s.logger.Info("file job started",
		zap.String("id", job.ID),
		zap.String("operation", operation),
		zap.Int64("size", upload.Size))

	return job, nil
}

// persistCtx outlives Close so terminal states are still written.
func (s *FileService) persistCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(s.ctx), 5*time.Second)
}

func (s *FileService) updateProgress(id string, progress int) {
	ctx, cancel := s.persistCtx()
	defer cancel()

	job, found, err := s.repo.Get(ctx, id)
	if err != nil || !found {
		if err != nil {
			s.logger.Warn("load job for progress", zap.String("id", id), zap.Error(err))
		}
		return
	}
	job.Progress = progress
	if err := s.repo.Save(ctx, job); err != nil {
		s.logger.Warn("save job progress", zap.String("id", id), zap.Error(err))
	}
}

func (s *FileService) finish(id string, outcome Outcome, rj *runningJob) {
	defer func() {
		s.mu.Lock()
		delete(s.running, id)
		s.mu.Unlock()
		close(rj.done)
	}()

	ctx, cancel := s.persistCtx()
	defer cancel()

	job, found, err := s.repo.Get(ctx, id)
	if err != nil || !found {
		return
	}

	finished := s.now().UTC()
	job.FinishedAt = &finished
	if outcome == Completed {
		job.Status = domain.JobCompleted
		job.Progress = 100
	} else {
		job.Status = domain.JobCancelled
	}
	job.Summary = jobSummary(job)

	if err := s.repo.Save(ctx, job); err != nil {
		s.logger.Warn("save finished job", zap.String("id", id), zap.Error(err))
		return
	}
	s.logger.Info("file job finished", zap.String("id", id), zap.Stringer("outcome", outcome))
}

// Status returns the current state of a job.
func (s *FileService) Status(ctx context.Context, id string) (domain.FileJob, error) {
	job, found, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.FileJob{}, err
	}
	if !found {
		return domain.FileJob{}, fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}
	return job, nil
}

// Cancel stops a running job and waits until its cancelled state is stored.
// Finished jobs are returned unchanged.
func (s *FileService) Cancel(ctx context.Context, id string) (domain.FileJob, error) {
	s.mu.Lock()
	rj := s.running[id]
	s.mu.Unlock()

	if rj != nil {
		rj.cancel()
		select {
		case <-rj.done:
		case <-ctx.Done():
			return domain.FileJob{}, ctx.Err()
		}
	}
	return s.Status(ctx, id)
}

// Download returns the placeholder output of a completed job.
func (s *FileService) Download(ctx context.Context, id string) (string, []byte, error) {
	job, err := s.Status(ctx, id)
	if err != nil {
		return "", nil, err
	}
	if job.Status != domain.JobCompleted {
		return "", nil, fmt.Errorf("%w: %s is %s", ErrJobNotReady, id, job.Status)
	}
	return job.OutputName, placeholder(job), nil
}

func placeholder(job domain.FileJob) []byte {
	return []byte(fmt.Sprintf(
		"Placeholder output of %s for %s (%d bytes).\nNo document processing was performed.\n",
		job.Operation, job.SourceName, job.SourceSize))
}

func jobSummary(job domain.FileJob) string {
	switch job.Status {
	case domain.JobCompleted:
		return fmt.Sprintf("%s is ready to download as %s", job.SourceName, job.OutputName)
	case domain.JobCancelled:
		return fmt.Sprintf("%s of %s was cancelled", job.Operation, job.SourceName)
	}
	return fmt.Sprintf("Processing %s (%s)", job.SourceName, job.Operation)
}

// publicOptions drops secrets before a job is stored.
func publicOptions(options map[string]string) map[string]string {
	if len(options) == 0 {
		return nil
	}
	out := make(map[string]string, len(options))
	for k, v := range options {
		if k == "password" {
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func checkNumberingOptions(options map[string]string) error {
	pos, ok := options["position"]
	if !ok {
		return nil
	}
	switch pos {
	case "top-left", "top-center", "top-right", "bottom-left", "bottom-center", "bottom-right":
		return nil
	}
	return fmt.Errorf("%w: position %q", ErrInvalidOption, pos)
}

func checkRotateOptions(options map[string]string) error {
	angle, ok := options["angle"]
	if !ok {
		return nil
	}
	switch angle {
	case "90", "180", "270", "-90":
		return nil
	}
	return fmt.Errorf("%w: angle must be 90, 180 or 270", ErrInvalidOption)
}

func checkProtectOptions(options map[string]string) error {
	if strings.TrimSpace(options["password"]) == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidOption)
	}
	return nil
}

// checkDeleteOptions validates a page list such as "1,3-5".
func checkDeleteOptions(options map[string]string) error {
	pages := strings.TrimSpace(options["pages"])
	if pages == "" {
		return fmt.Errorf("%w: pages is required", ErrInvalidOption)
	}
	for _, part := range strings.Split(pages, ",") {
		lo, hi, isRange := strings.Cut(strings.TrimSpace(part), "-")
		first, err := strconv.Atoi(lo)
		if err != nil || first < 1 {
			return fmt.Errorf("%w: page %q", ErrInvalidOption, part)
		}
		if !isRange {
			continue
		}
		last, err := strconv.Atoi(hi)
		if err != nil || last < first {
			return fmt.Errorf("%w: page range %q", ErrInvalidOption, part)
		}
	}
	return nil
}
