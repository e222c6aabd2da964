package service

import (
	"context"
	"testing"

	"bookvault/internal/common"
	"bookvault/internal/domain/repository"

	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func TestBookService_CreateRecordsOwner(t *testing.T) {
	svc := NewBookService(repository.NewMemoryBookRepository())
	ctx := context.Background()

	book, err := svc.Create(ctx, "admin", "BK2001", CreateBookRequest{
		Title:     strptr("Dune"),
		Author:    strptr("Frank Herbert"),
		Year:      intptr(1965),
		Publisher: strptr("Chilton Books"),
	})
	require.NoError(t, err)
	require.Equal(t, "admin", book.Owner)

	got, err := svc.Get(ctx, "BK2001")
	require.NoError(t, err)
	require.Equal(t, book, got)
}

func TestBookService_CreateRequiresAllFields(t *testing.T) {
	svc := NewBookService(repository.NewMemoryBookRepository())

	_, err := svc.Create(context.Background(), "admin", "BK2001", CreateBookRequest{
		Title:  strptr("Dune"),
		Author: strptr("Frank Herbert"),
		// year and publisher missing
	})
	require.ErrorIs(t, err, common.ErrBadRequest)
}

func TestBookService_CreateConflict(t *testing.T) {
	svc := NewBookService(repository.NewMemoryBookRepository())

	_, err := svc.Create(context.Background(), "admin", "BK1001", CreateBookRequest{
		Title:     strptr("x"),
		Author:    strptr("y"),
		Year:      intptr(1),
		Publisher: strptr("z"),
	})
	require.ErrorIs(t, err, common.ErrConflict)
}

func TestBookService_UpdateEmptyPatchRejected(t *testing.T) {
	svc := NewBookService(repository.NewMemoryBookRepository())

	_, err := svc.Update(context.Background(), "BK1001", UpdateBookRequest{})
	require.ErrorIs(t, err, common.ErrBadRequest)
}

func TestBookService_UpdatePartial(t *testing.T) {
	svc := NewBookService(repository.NewMemoryBookRepository())
	ctx := context.Background()

	before, err := svc.Get(ctx, "BK1004")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "BK1004", UpdateBookRequest{Year: intptr(1867)})
	require.NoError(t, err)
	require.Equal(t, before.Title, updated.Title)
	require.Equal(t, before.Author, updated.Author)
	require.Equal(t, before.Publisher, updated.Publisher)
	require.Equal(t, 1867, updated.Year)
}

func TestBookService_DeleteUnknown(t *testing.T) {
	svc := NewBookService(repository.NewMemoryBookRepository())

	require.ErrorIs(t, svc.Delete(context.Background(), "missing"), common.ErrNotFound)
}
