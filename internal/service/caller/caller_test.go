package caller_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domaincaller "github.com/alanyang/caller-hub/internal/domain/caller"
	"github.com/alanyang/caller-hub/internal/mocks"
	"github.com/alanyang/caller-hub/internal/service/caller"
)

func newService(t *testing.T) (*caller.Service, *mocks.MockCallerRepository) {
	t.Helper()
	repo := mocks.NewMockCallerRepository(gomock.NewController(t))
	return caller.NewService(repo), repo
}

// ── lifecycle ─────────────────────────────────────────────────────────────────

func TestCreate(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domaincaller.Caller) (domaincaller.Caller, error) {
			assert.Equal(t, "Dana Reyes", c.Name)
			assert.Equal(t, "dana@example.com", c.Email)
			assert.Equal(t, domaincaller.StatusActive, c.Status)
			assert.Nil(t, c.AssignedTo)
			assert.Nil(t, c.BatchID)
			return c, nil
		})

	created, err := svc.Create(context.Background(), "Dana Reyes", "dana@example.com", "+15550100")
	require.NoError(t, err)
	assert.Equal(t, "Dana Reyes", created.Name)
}

func TestCreate_Duplicate(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(domaincaller.Caller{}, domaincaller.ErrDuplicateContact)

	_, err := svc.Create(context.Background(), "Dana Reyes", "dana@example.com", "+15550100")
	assert.ErrorIs(t, err, domaincaller.ErrDuplicateContact)
}

func TestComplete(t *testing.T) {
	svc, repo := newService(t)
	id := uuid.New()
	repo.EXPECT().Complete(gomock.Any(), id).Return(nil)

	require.NoError(t, svc.Complete(context.Background(), id))
}

func TestUnassign(t *testing.T) {
	svc, repo := newService(t)
	id := uuid.New()
	repo.EXPECT().Unassign(gomock.Any(), id).Return(nil)

	require.NoError(t, svc.Unassign(context.Background(), id))
}

// ── CSV import ────────────────────────────────────────────────────────────────

func TestImportCSV(t *testing.T) {
	const input = `name,email,phone
Dana Reyes,dana@example.com,+15550100
Lee Park,lee@example.com,+15550101
`
	svc, repo := newService(t)

	var batchIDs []uuid.UUID
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domaincaller.Caller) (domaincaller.Caller, error) {
			require.NotNil(t, c.BatchID)
			batchIDs = append(batchIDs, *c.BatchID)
			return c, nil
		}).Times(2)

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Zero(t, result.Rejected)

	// Header skipped; both rows share the batch id returned in the result.
	require.Len(t, batchIDs, 2)
	assert.Equal(t, result.BatchID, batchIDs[0])
	assert.Equal(t, result.BatchID, batchIDs[1])
}

func TestImportCSV_NoHeader(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domaincaller.Caller) (domaincaller.Caller, error) {
			return c, nil
		})

	result, err := svc.ImportCSV(context.Background(),
		strings.NewReader("Dana Reyes,dana@example.com,+15550100\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
}

func TestImportCSV_BadRows(t *testing.T) {
	const input = `name,email,phone
Dana Reyes,dana@example.com,+15550100
,missing@example.com,+15550101
Lee Park,not-an-email,+15550102
Sam Oduya,sam@example.com,
Truncated Row,only-two-fields
`
	svc, repo := newService(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domaincaller.Caller) (domaincaller.Caller, error) {
			return c, nil
		})

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 4, result.Rejected)
	require.Len(t, result.Errors, 4)
	assert.Equal(t, 3, result.Errors[0].Line)
	assert.Contains(t, result.Errors[1].Reason, "invalid email")
}

func TestImportCSV_DuplicateRejectedNotFatal(t *testing.T) {
	const input = `Dana Reyes,dana@example.com,+15550100
Dana Reyes,dana@example.com,+15550100
Lee Park,lee@example.com,+15550101
`
	svc, repo := newService(t)
	gomock.InOrder(
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c domaincaller.Caller) (domaincaller.Caller, error) {
				return c, nil
			}),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(domaincaller.Caller{}, domaincaller.ErrDuplicateContact),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c domaincaller.Caller) (domaincaller.Caller, error) {
				return c, nil
			}),
	)

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Rejected)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Line)
}

func TestImportCSV_BareQuoteRowRejectedOthersImported(t *testing.T) {
	const input = `name,email,phone
Dana Reyes,dana@example.com,+15550100
Lee "Park,lee@example.com,+15550101
Sam Oduya,sam@example.com,+15550102
`
	svc, repo := newService(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domaincaller.Caller) (domaincaller.Caller, error) {
			return c, nil
		}).Times(2)

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Rejected)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Line)
}

func TestImportCSV_QuotedMultilineFieldLineNumbers(t *testing.T) {
	// The first record spans two file lines; the bad row after it must still
	// be reported at its real line number.
	const input = `"Dana
Reyes",dana@example.com,+15550100
,missing@example.com,+15550101
`
	svc, repo := newService(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domaincaller.Caller) (domaincaller.Caller, error) {
			return c, nil
		})

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Line)
}

// failingReader delivers the same error on every Read, like a client that
// dropped the connection mid-upload.
type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestImportCSV_ReaderFailureAborts(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domaincaller.Caller) (domaincaller.Caller, error) {
			return c, nil
		})

	readErr := errors.New("read tcp: connection reset by peer")
	body := io.MultiReader(
		strings.NewReader("Dana Reyes,dana@example.com,+15550100\n"),
		failingReader{err: readErr},
	)

	result, err := svc.ImportCSV(context.Background(), body)
	require.ErrorIs(t, err, readErr)
	assert.Equal(t, 1, result.Imported)
	assert.Zero(t, result.Rejected)
}

func TestImportCSV_Empty(t *testing.T) {
	svc, _ := newService(t)
	result, err := svc.ImportCSV(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, result.Imported)
	assert.Zero(t, result.Rejected)
}
