package loan

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanboard/cms/internal/apperror"
	"github.com/loanboard/cms/internal/category"
	"github.com/loanboard/cms/internal/db/dbtest"
	"github.com/loanboard/cms/internal/storage"
)

const publicBase = "http://blobs.test/loanboard"

// flakyStorage fails the operations it is told to.
type flakyStorage struct {
	*storage.MemoryStorage
	failUpload bool
	failDelete bool
}

func (s *flakyStorage) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if s.failUpload {
		return errors.New("bucket unreachable")
	}
	return s.MemoryStorage.Upload(ctx, key, r, size, contentType)
}

func (s *flakyStorage) Delete(ctx context.Context, key string) error {
	if s.failDelete {
		return errors.New("access denied")
	}
	return s.MemoryStorage.Delete(ctx, key)
}

type fixture struct {
	svc     *Service
	cats    *category.Service
	catRepo category.Repository
	blobs   *flakyStorage
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	bdb := dbtest.Bolt(t)
	loans := NewBoltRepository(bdb)
	catRepo := category.NewBoltRepository(bdb)
	cats := category.NewService(catRepo, loans)
	blobs := &flakyStorage{MemoryStorage: storage.NewMemoryStorage(publicBase)}

	return &fixture{
		svc:     NewService(loans, cats, blobs, 1<<20),
		cats:    cats,
		catRepo: catRepo,
		blobs:   blobs,
	}
}

func (f *fixture) category(t *testing.T, name string, active bool) *category.Category {
	t.Helper()
	c, err := f.cats.Create(context.Background(), category.CreateRequest{Name: name, IsActive: &active})
	require.NoError(t, err)
	return c
}

func pngLogo(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func logo(t *testing.T) *Upload {
	return &Upload{Filename: "acme.PNG", ContentType: "image/png", Body: bytes.NewReader(pngLogo(t))}
}

func createReq(categoryID string) CreateRequest {
	return CreateRequest{
		Category:        categoryID,
		LoanTitle:       " Home loan ",
		LoanCompany:     "Acme Finance",
		BankName:        "Acme Bank",
		LoanDescription: "Floating rate",
		LoanQuote:       "From 8.4%",
		Link:            "https://acme.example/home",
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.category(t, "Home", true)

	l, err := f.svc.Create(ctx, createReq(cat.ID), logo(t))
	require.NoError(t, err)
	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "Home loan", l.LoanTitle)
	assert.True(t, l.IsActive)
	require.NotNil(t, l.Category)
	assert.Equal(t, "Home", l.Category.Name)

	require.Contains(t, l.BankLogo, publicBase+"/bank-logos/")
	assert.Contains(t, l.BankLogo, ".png")
	key, ok := f.blobs.KeyFromURL(l.BankLogo)
	require.True(t, ok)
	assert.True(t, f.blobs.Has(key))

	plain, err := f.svc.Create(ctx, createReq(cat.ID), nil)
	require.NoError(t, err)
	assert.Empty(t, plain.BankLogo)
	assert.Equal(t, 1, f.blobs.Len())
}

func TestCreateUnknownCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, createReq("00000000-0000-0000-0000-000000000000"), logo(t))
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.Equal(t, category.MsgNotFound, err.Error())

	assert.Equal(t, 0, f.blobs.Len())
	all, err := f.svc.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.category(t, "Home", true)

	req := createReq(cat.ID)
	req.Link = "not a url"
	_, err := f.svc.Create(ctx, req, nil)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	req = createReq(cat.ID)
	req.BankName = "  "
	_, err = f.svc.Create(ctx, req, nil)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestCreateRejectsBadLogo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.category(t, "Home", true)

	testCases := []struct {
		name    string
		upload  *Upload
		message string
	}{
		{
			name:    "wrong extension",
			upload:  &Upload{Filename: "logo.pdf", ContentType: "application/pdf", Body: bytes.NewReader(pngLogo(t))},
			message: MsgNotImage,
		},
		{
			name:    "text disguised as png",
			upload:  &Upload{Filename: "logo.png", ContentType: "image/png", Body: bytes.NewReader([]byte("hello"))},
			message: MsgNotImage,
		},
		{
			name:    "too large",
			upload:  &Upload{Filename: "logo.png", ContentType: "image/png", Body: bytes.NewReader(make([]byte, 2<<20))},
			message: MsgTooLarge,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, createReq(cat.ID), tc.upload)
			require.Error(t, err)
			assert.True(t, apperror.Is(err, apperror.KindValidation))
			assert.Equal(t, tc.message, err.Error())
			assert.Equal(t, 0, f.blobs.Len())
		})
	}
}

func TestCreateUploadFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.category(t, "Home", true)
	f.blobs.failUpload = true

	_, err := f.svc.Create(ctx, createReq(cat.ID), logo(t))
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindUpstream))

	e, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, MsgUploadFailed, e.Message)

	all, err := f.svc.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateReplacesLogo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.category(t, "Home", true)

	l, err := f.svc.Create(ctx, createReq(cat.ID), logo(t))
	require.NoError(t, err)
	oldKey, _ := f.blobs.KeyFromURL(l.BankLogo)

	updated, err := f.svc.Update(ctx, l.ID, UpdateRequest{LoanQuote: strPtr("From 7.9%")}, logo(t))
	require.NoError(t, err)
	assert.Equal(t, "From 7.9%", updated.LoanQuote)
	assert.Equal(t, "Home loan", updated.LoanTitle)
	assert.NotEqual(t, l.BankLogo, updated.BankLogo)

	newKey, _ := f.blobs.KeyFromURL(updated.BankLogo)
	assert.True(t, f.blobs.Has(newKey))
	assert.False(t, f.blobs.Has(oldKey))
	assert.Equal(t, 1, f.blobs.Len())
}

func TestUpdateKeepsRecordWhenOldLogoDeleteFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.category(t, "Home", true)

	l, err := f.svc.Create(ctx, createReq(cat.ID), logo(t))
	require.NoError(t, err)

	f.blobs.failDelete = true
	updated, err := f.svc.Update(ctx, l.ID, UpdateRequest{}, logo(t))
	require.NoError(t, err)
	assert.NotEqual(t, l.BankLogo, updated.BankLogo)
	assert.Equal(t, 2, f.blobs.Len())
}

func TestUpdateCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	home := f.category(t, "Home", true)
	car := f.category(t, "Car", true)

	l, err := f.svc.Create(ctx, createReq(home.ID), nil)
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, l.ID, UpdateRequest{Category: strPtr(car.ID)}, nil)
	require.NoError(t, err)
	require.NotNil(t, updated.Category)
	assert.Equal(t, car.ID, updated.Category.ID)

	_, err = f.svc.Update(ctx, l.ID, UpdateRequest{Category: strPtr("missing")}, logo(t))
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.Equal(t, 0, f.blobs.Len())

	_, err = f.svc.Update(ctx, "missing", UpdateRequest{IsActive: boolPtr(false)}, nil)
	require.Error(t, err)
	assert.Equal(t, MsgNotFound, err.Error())
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.category(t, "Home", true)

	l, err := f.svc.Create(ctx, createReq(cat.ID), logo(t))
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, l.ID))
	assert.Equal(t, 0, f.blobs.Len())

	_, err = f.svc.Get(ctx, l.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestDeleteIgnoresBlobFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.category(t, "Home", true)

	l, err := f.svc.Create(ctx, createReq(cat.ID), logo(t))
	require.NoError(t, err)

	f.blobs.failDelete = true
	require.NoError(t, f.svc.Delete(ctx, l.ID))

	_, err = f.svc.Get(ctx, l.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestPublicViews(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	home := f.category(t, "Home", true)
	hidden := f.category(t, "Hidden", false)

	visible, err := f.svc.Create(ctx, createReq(home.ID), nil)
	require.NoError(t, err)
	req := createReq(home.ID)
	req.IsActive = boolPtr(false)
	draft, err := f.svc.Create(ctx, req, nil)
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, createReq(hidden.ID), nil)
	require.NoError(t, err)

	public, err := f.svc.PublicList(ctx, "")
	require.NoError(t, err)
	assert.Len(t, public, 2)

	byCat, err := f.svc.PublicList(ctx, home.ID)
	require.NoError(t, err)
	require.Len(t, byCat, 1)
	assert.Equal(t, visible.ID, byCat[0].ID)

	_, err = f.svc.PublicList(ctx, hidden.ID)
	require.Error(t, err)
	assert.Equal(t, MsgCategoryUnavailable, err.Error())

	summary, loans, err := f.svc.ByCategory(ctx, home.ID)
	require.NoError(t, err)
	assert.Equal(t, "Home", summary.Name)
	assert.Len(t, loans, 1)

	_, _, err = f.svc.ByCategory(ctx, "nope")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.Equal(t, MsgCategoryUnavailable, err.Error())

	_, err = f.svc.PublicGet(ctx, draft.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	admin, err := f.svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, admin, 3)
	assert.True(t, !admin[0].CreatedAt.Before(admin[1].CreatedAt))

	n, err := f.svc.CountByCategory(ctx, home.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCategoryDeleteBlockedByLoans(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.category(t, "Home", true)

	l, err := f.svc.Create(ctx, createReq(cat.ID), nil)
	require.NoError(t, err)

	err = f.cats.Delete(ctx, cat.ID)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindConflict))

	require.NoError(t, f.svc.Delete(ctx, l.ID))
	require.NoError(t, f.cats.Delete(ctx, cat.ID))
}

func TestDanglingCategoryReference(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.category(t, "Home", true)

	l, err := f.svc.Create(ctx, createReq(cat.ID), nil)
	require.NoError(t, err)

	// what a loan created between the delete check and the delete is left with
	require.NoError(t, f.catRepo.Delete(ctx, cat.ID))

	got, err := f.svc.Get(ctx, l.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Category)

	admin, err := f.svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, admin, 1)
	assert.Nil(t, admin[0].Category)

	_, _, err = f.svc.ByCategory(ctx, cat.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}
