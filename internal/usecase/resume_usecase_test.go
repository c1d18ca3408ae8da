package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/fadilmartias/resume-matcher/internal/mocks"
	"github.com/fadilmartias/resume-matcher/internal/model"
	"github.com/fadilmartias/resume-matcher/internal/usecase"
	"github.com/fadilmartias/resume-matcher/internal/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func TestResumeCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		fh   func(t *testing.T) *multipart.FileHeader
		want string
	}{
		{
			name: "no file",
			fh:   func(t *testing.T) *multipart.FileHeader { return nil },
			want: "No file was submitted.",
		},
		{
			name: "empty file",
			fh:   func(t *testing.T) *multipart.FileHeader { return newFileHeader(t, "cv.pdf", nil) },
			want: "The submitted file is empty.",
		},
		{
			name: "bad extension",
			fh:   func(t *testing.T) *multipart.FileHeader { return newFileHeader(t, "cv.exe", []byte("MZ")) },
			want: `Unsupported file extension ".exe". Allowed extensions are: pdf, docx, txt.`,
		},
		{
			name: "too large",
			fh:   func(t *testing.T) *multipart.FileHeader { return newFileHeader(t, "cv.txt", bytes.Repeat([]byte("a"), 32)) },
			want: "Ensure this file is no larger than 16 bytes.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := &mocks.Storage{}
			repo := &mocks.ResumeRepository{}
			uc := usecase.NewResumeUsecase(repo, storage, 16, zap.NewNop())

			_, err := uc.Create(context.Background(), tt.fh(t))
			var formErr *util.FormError
			require.ErrorAs(t, err, &formErr)
			assert.Equal(t, []string{tt.want}, formErr.Errors["file"])
			storage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestResumeCreate_Success(t *testing.T) {
	storage := &mocks.Storage{}
	repo := &mocks.ResumeRepository{}
	id := uuid.New()

	storage.On("Save", mock.Anything, mock.Anything, ".pdf", "application/octet-stream").Return("resumes/k.pdf", nil)
	repo.On("CreateResume", mock.Anything, mock.MatchedBy(func(r *model.Resume) bool {
		return r.File == "resumes/k.pdf" &&
			r.OriginalFilename == "CV.PDF" &&
			r.SizeBytes == 4 &&
			r.StorageProvider == "local"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Resume).ID = id
	}).Return(nil)

	uc := usecase.NewResumeUsecase(repo, storage, 1024, zap.NewNop())
	resume, err := uc.Create(context.Background(), newFileHeader(t, "CV.PDF", []byte("%PDF")))
	require.NoError(t, err)
	assert.Equal(t, id, resume.ID)
	storage.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestResumeCreate_RemovesFileWhenInsertFails(t *testing.T) {
	storage := &mocks.Storage{}
	repo := &mocks.ResumeRepository{}

	storage.On("Save", mock.Anything, mock.Anything, ".txt", mock.Anything).Return("resumes/k.txt", nil)
	storage.On("Delete", mock.Anything, "resumes/k.txt").Return(nil)
	repo.On("CreateResume", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	uc := usecase.NewResumeUsecase(repo, storage, 1024, zap.NewNop())
	_, err := uc.Create(context.Background(), newFileHeader(t, "cv.txt", []byte("text")))
	assert.EqualError(t, err, "insert failed")
	storage.AssertExpectations(t)
}
