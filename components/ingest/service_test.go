package ingest

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatstack/botadmin/pkg/backend"
)

type fakeBackend struct {
	mu      sync.Mutex
	job     backend.IngestJob
	polls   int
	cleared bool
}

func (f *fakeBackend) submit() (backend.IngestJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.job, nil
}

func (f *fakeBackend) IngestText(context.Context, string, string) (backend.IngestJob, error) {
	return f.submit()
}

func (f *fakeBackend) IngestQA(context.Context, string, []backend.QAPair) (backend.IngestJob, error) {
	return f.submit()
}

func (f *fakeBackend) IngestURL(context.Context, string, string) (backend.IngestJob, error) {
	return f.submit()
}

func (f *fakeBackend) IngestPDF(context.Context, string, string, io.Reader) (backend.IngestJob, error) {
	return f.submit()
}

func (f *fakeBackend) ClearKnowledge(context.Context, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared = true
	return nil
}

// IngestJobStatus advances the job a step per poll: two live polls, then
// completed.
func (f *fakeBackend) IngestJobStatus(context.Context, string) (backend.IngestJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.polls++
	switch {
	case f.polls == 1:
		f.job.Status = backend.JobPending
		f.job.Progress = 0
	case f.polls == 2:
		f.job.Status = backend.JobProcessing
		f.job.Progress = 50
	default:
		f.job.Status = backend.JobCompleted
		f.job.Progress = 100
	}
	return f.job, nil
}

func newTestService(t *testing.T, fb *fakeBackend) *Service {
	t.Helper()
	svc, err := NewService(Options{Backend: fb})
	require.NoError(t, err)
	return svc
}

func TestUploadValidation(t *testing.T) {
	svc := newTestService(t, &fakeBackend{job: backend.IngestJob{ID: "job-1"}})
	ctx := context.Background()

	_, err := svc.UploadText(ctx, "bot-1", "   ")
	assert.Error(t, err)

	_, err = svc.UploadQA(ctx, "bot-1", nil)
	assert.Error(t, err)

	_, err = svc.UploadQA(ctx, "bot-1", []backend.QAPair{{Question: "q", Answer: ""}})
	assert.Error(t, err)

	_, err = svc.UploadURL(ctx, "bot-1", "ftp://example.com")
	assert.Error(t, err)

	_, err = svc.UploadPDF(ctx, "bot-1", "notes.txt", strings.NewReader("x"))
	assert.Error(t, err)

	job, err := svc.UploadText(ctx, "bot-1", "hello")
	require.NoError(t, err)
	assert.Equal(t, "job-1", job.ID)
}

func TestClearKnowledge(t *testing.T) {
	fb := &fakeBackend{}
	svc := newTestService(t, fb)

	require.NoError(t, svc.Clear(context.Background(), "bot-1"))
	assert.True(t, fb.cleared)
}

func TestPollerStopsOnTerminalStatus(t *testing.T) {
	fb := &fakeBackend{job: backend.IngestJob{ID: "job-1"}}
	svc := newTestService(t, fb)
	poller := NewPoller(svc, 5*time.Millisecond)
	defer poller.Stop()

	var mu sync.Mutex
	var progress []Progress
	done := make(chan backend.IngestJob, 1)

	poller.Start(context.Background(), "job-1",
		func(p Progress) {
			mu.Lock()
			progress = append(progress, p)
			mu.Unlock()
		},
		func(job backend.IngestJob) { done <- job })

	select {
	case job := <-done:
		assert.Equal(t, backend.JobCompleted, job.Status)
		assert.Equal(t, 100, job.Progress)
	case <-time.After(time.Second):
		t.Fatal("poller never completed")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, progress, 2)
	assert.Equal(t, backend.JobPending, progress[0].Job.Status)
	assert.Equal(t, backend.JobProcessing, progress[1].Job.Status)
	assert.NotEmpty(t, progress[0].Caption)
}

func TestPollerFiresDoneOnce(t *testing.T) {
	fb := &fakeBackend{job: backend.IngestJob{ID: "job-1"}, polls: 10}
	svc := newTestService(t, fb)
	poller := NewPoller(svc, 5*time.Millisecond)
	defer poller.Stop()

	done := make(chan struct{}, 4)
	poller.Start(context.Background(), "job-1", nil, func(backend.IngestJob) { done <- struct{}{} })

	<-done
	select {
	case <-done:
		t.Fatal("done fired more than once")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCaptionRotation(t *testing.T) {
	first := CaptionAt(0)
	second := CaptionAt(2 * time.Second)
	assert.NotEqual(t, first, second)
	assert.Equal(t, first, CaptionAt(time.Second))

	cycle := time.Duration(len(trainingCaptions)) * 2 * time.Second
	assert.Equal(t, first, CaptionAt(cycle))
}
