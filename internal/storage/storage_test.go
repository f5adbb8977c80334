package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotable/leadintel/internal/storage"
)

type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	puts    []*s3.PutObjectInput
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = body
	f.puts = append(f.puts, in)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	body, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bucket := aws.ToString(in.Bucket) + "/"
	var keys []string
	for k := range f.objects {
		if !strings.HasPrefix(k, bucket) {
			continue
		}
		key := strings.TrimPrefix(k, bucket)
		if strings.HasPrefix(key, aws.ToString(in.Prefix)) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	out := &s3.ListObjectsV2Output{}
	for _, k := range keys {
		out.Contents = append(out.Contents, types.Object{Key: aws.String(k)})
	}
	return out, nil
}

type report struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func TestReportKey(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "optimization/2024/01/15/10-30-00.json", storage.ReportKey(storage.KindOptimization, at))
}

func TestS3ArchiveRoundTrip(t *testing.T) {
	fake := newFakeS3()
	archive := storage.NewS3Archive(fake, "reports-bucket", "/leadintel/")
	ctx := context.Background()

	older := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	_, err := storage.SaveReport(ctx, archive, storage.KindIntelligence, older, report{Name: "old", Score: 1})
	require.NoError(t, err)
	key, err := storage.SaveReport(ctx, archive, storage.KindIntelligence, newer, report{Name: "new", Score: 2})
	require.NoError(t, err)
	assert.Equal(t, "intelligence/2024/01/15/11-00-00.json", key)

	require.Len(t, fake.puts, 2)
	assert.Equal(t, "leadintel/intelligence/2024/01/15/11-00-00.json", aws.ToString(fake.puts[1].Key))
	assert.Equal(t, "application/json", aws.ToString(fake.puts[1].ContentType))

	var got report
	latest, err := storage.LatestReport(ctx, archive, storage.KindIntelligence, &got)
	require.NoError(t, err)
	assert.Equal(t, key, latest)
	assert.Equal(t, report{Name: "new", Score: 2}, got)

	keys, err := archive.List(ctx, storage.KindIntelligence+"/")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"intelligence/2024/01/15/11-00-00.json",
		"intelligence/2024/01/15/10-00-00.json",
	}, keys)
}

func TestS3ArchiveMissingKey(t *testing.T) {
	archive := storage.NewS3Archive(newFakeS3(), "bucket", "")
	var got report
	err := archive.Get(context.Background(), "nope.json", &got)
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	_, err = storage.LatestReport(context.Background(), archive, storage.KindOptimization, &got)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemoryArchive(t *testing.T) {
	archive := storage.NewMemoryArchive()
	ctx := context.Background()
	at := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	_, err := storage.SaveReport(ctx, archive, storage.KindOptimization, at, report{Name: "a"})
	require.NoError(t, err)
	_, err = storage.SaveReport(ctx, archive, storage.KindOptimization, at.Add(time.Minute), report{Name: "b"})
	require.NoError(t, err)
	_, err = storage.SaveReport(ctx, archive, storage.KindIntelligence, at.Add(time.Hour), report{Name: "other"})
	require.NoError(t, err)

	var got report
	_, err = storage.LatestReport(ctx, archive, storage.KindOptimization, &got)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Name)

	assert.ErrorIs(t, archive.Get(ctx, "missing", &got), storage.ErrNotFound)
}
