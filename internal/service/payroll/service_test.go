package payroll

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-salary-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-salary-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/hrapi"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSalarySource struct {
	mock.Mock
}

func (m *mockSalarySource) DailySalary(ctx context.Context, userID string, from, to time.Time) ([]payroll.ShiftRecord, error) {
	args := m.Called(ctx, userID, from, to)
	records, _ := args.Get(0).([]payroll.ShiftRecord)
	return records, args.Error(1)
}

func (m *mockSalarySource) MonthlyHistory(ctx context.Context, userID string) ([]payroll.MonthlySalary, error) {
	args := m.Called(ctx, userID)
	history, _ := args.Get(0).([]payroll.MonthlySalary)
	return history, args.Error(1)
}

type fakeSnapshots struct {
	mu       sync.Mutex
	stored   map[string][]payroll.ShiftRecord
	runs     []payroll.SyncRun
	listErr  error
	replaced int
}

func newFakeSnapshots() *fakeSnapshots {
	return &fakeSnapshots{stored: make(map[string][]payroll.ShiftRecord)}
}

func (f *fakeSnapshots) ReplaceRange(_ context.Context, userID string, _, _ time.Time, records []payroll.ShiftRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored[userID] = records
	f.replaced++
	return nil
}

func (f *fakeSnapshots) ListRange(_ context.Context, userID string, _, _ time.Time) ([]payroll.ShiftRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stored[userID], f.listErr
}

func (f *fakeSnapshots) ListTrackedUsers(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]string, 0, len(f.stored))
	for u := range f.stored {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeSnapshots) CreateSyncRun(_ context.Context, run payroll.SyncRun) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs = append(f.runs, run)
	return nil
}

var fixedNow = time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

func newTestService(source payroll.SalarySource, snapshots payroll.SnapshotRepository) *PayrollServiceImpl {
	svc := NewPayrollService(source, snapshots, payroll.NewCurrencyFormatter("en-US", "USD")).(*PayrollServiceImpl)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func ctxAs(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()
	tokens := jwt.NewJWTService("test-secret", "5m")
	raw, _, err := tokens.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	token, err := jwtauth.VerifyToken(tokens.JWTAuth(), raw)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleShifts() []payroll.ShiftRecord {
	return []payroll.ShiftRecord{
		{Date: "2025-01-02", ShiftName: "Morning", HoursWorked: dec("8"), RegularHours: dec("8"), OvertimeHours: dec("0"),
			ShiftDurationHours: dec("8"), ShiftMultiplier: dec("1"), SalaryRate: dec("100"),
			RegularAmount: dec("800"), OvertimeAmount: dec("0"), TotalAmount: dec("800")},
		{Date: "2025-01-03T00:00:00", ShiftName: "Morning", HoursWorked: dec("9"), RegularHours: dec("8"), OvertimeHours: dec("1"),
			ShiftDurationHours: dec("8"), ShiftMultiplier: dec("1"), SalaryRate: dec("100"),
			RegularAmount: dec("800"), OvertimeAmount: dec("150"), TotalAmount: dec("950")},
		{Date: "2025-01-02", ShiftName: "Evening", HoursWorked: dec("4"), RegularHours: dec("4"), OvertimeHours: dec("0"),
			ShiftDurationHours: dec("4"), ShiftMultiplier: dec("1"), SalaryRate: dec("100"),
			RegularAmount: dec("400"), OvertimeAmount: dec("0"), TotalAmount: dec("999")},
	}
}

func TestGetDailySalary_GroupsAndStoresSnapshot(t *testing.T) {
	source := &mockSalarySource{}
	snapshots := newFakeSnapshots()
	source.On("DailySalary", mock.Anything, "u-1", mock.Anything, mock.Anything).Return(sampleShifts(), nil)

	svc := newTestService(source, snapshots)
	resp, err := svc.GetDailySalary(ctxAs(t, "u-1", user.RoleEmployee), payroll.DailySalaryFilter{UserID: "u-1"})
	require.NoError(t, err)

	assert.Equal(t, "2025-01-01", resp.From)
	assert.Equal(t, "2025-01-31", resp.To)
	assert.False(t, resp.Stale)
	require.Len(t, resp.Groups, 2)
	assert.Equal(t, "2025-01-03", resp.Groups[0].Date)
	assert.Equal(t, "2025-01-02", resp.Groups[1].Date)
	assert.Equal(t, []string{"Morning", "Evening"}, []string{resp.Groups[1].Shifts[0].ShiftName, resp.Groups[1].Shifts[1].ShiftName})
	assert.Equal(t, "1,799 USD", resp.Groups[1].TotalAmountFormatted)
	assert.Contains(t, resp.Groups[1].Shifts[1].Discrepancies, payroll.DiscrepancyTotalAmount)

	assert.Equal(t, 3, resp.Summary.TotalShifts)
	assert.True(t, resp.Summary.TotalAmount.Equal(dec("2749")))
	assert.Equal(t, 1, snapshots.replaced)

	source.AssertExpectations(t)
}

func TestGetDailySalary_FallsBackToSnapshot(t *testing.T) {
	source := &mockSalarySource{}
	snapshots := newFakeSnapshots()
	snapshots.stored["u-1"] = sampleShifts()[:1]
	source.On("DailySalary", mock.Anything, "u-1", mock.Anything, mock.Anything).
		Return(nil, &hrapi.APIError{StatusCode: 502, Path: "/api/Salary/daily/user/u-1"})

	svc := newTestService(source, snapshots)
	resp, err := svc.GetDailySalary(ctxAs(t, "u-1", user.RoleEmployee), payroll.DailySalaryFilter{UserID: "u-1"})
	require.NoError(t, err)

	assert.True(t, resp.Stale)
	require.Len(t, resp.Groups, 1)
	assert.Equal(t, 0, snapshots.replaced)
}

func TestGetDailySalary_NoSnapshot(t *testing.T) {
	source := &mockSalarySource{}
	source.On("DailySalary", mock.Anything, "u-1", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	svc := newTestService(source, newFakeSnapshots())
	_, err := svc.GetDailySalary(ctxAs(t, "u-1", user.RoleEmployee), payroll.DailySalaryFilter{UserID: "u-1"})
	assert.ErrorIs(t, err, payroll.ErrSalarySourceFailure)
	assert.ErrorIs(t, err, payroll.ErrSnapshotNotFound)
}

func TestGetDailySalary_NoSnapshotKeepsUpstreamCause(t *testing.T) {
	source := &mockSalarySource{}
	source.On("DailySalary", mock.Anything, "u-1", mock.Anything, mock.Anything).
		Return(nil, &hrapi.APIError{StatusCode: 500, Path: "/api/Salary/daily/user/u-1"})

	svc := newTestService(source, newFakeSnapshots())
	_, err := svc.GetDailySalary(ctxAs(t, "u-1", user.RoleEmployee), payroll.DailySalaryFilter{UserID: "u-1"})

	var apiErr *hrapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.StatusCode)
	assert.ErrorIs(t, err, payroll.ErrSnapshotNotFound)
}

func TestGetDailySalary_SnapshotReadFailureKeepsUpstreamCause(t *testing.T) {
	source := &mockSalarySource{}
	source.On("DailySalary", mock.Anything, "u-1", mock.Anything, mock.Anything).
		Return(nil, context.DeadlineExceeded)
	snapshots := newFakeSnapshots()
	snapshots.listErr = errors.New("pool closed")

	svc := newTestService(source, snapshots)
	_, err := svc.GetDailySalary(ctxAs(t, "u-1", user.RoleEmployee), payroll.DailySalaryFilter{UserID: "u-1"})
	assert.ErrorIs(t, err, payroll.ErrSalarySourceFailure)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGetDailySalary_UnauthorizedUpstreamIsNotMasked(t *testing.T) {
	source := &mockSalarySource{}
	source.On("DailySalary", mock.Anything, "u-1", mock.Anything, mock.Anything).
		Return(nil, hrapi.ErrUnauthorized)

	svc := newTestService(source, newFakeSnapshots())
	_, err := svc.GetDailySalary(ctxAs(t, "u-1", user.RoleEmployee), payroll.DailySalaryFilter{UserID: "u-1"})
	assert.ErrorIs(t, err, hrapi.ErrUnauthorized)
}

func TestGetDailySalary_Authorization(t *testing.T) {
	source := &mockSalarySource{}
	source.On("DailySalary", mock.Anything, "u-2", mock.Anything, mock.Anything).Return([]payroll.ShiftRecord{}, nil)
	svc := newTestService(source, newFakeSnapshots())
	filter := payroll.DailySalaryFilter{UserID: "u-2"}

	_, err := svc.GetDailySalary(ctxAs(t, "u-1", user.RoleEmployee), filter)
	assert.ErrorIs(t, err, payroll.ErrSalaryAccessDenied)

	_, err = svc.GetDailySalary(context.Background(), filter)
	assert.ErrorIs(t, err, user.ErrInvalidToken)

	resp, err := svc.GetDailySalary(ctxAs(t, "m-1", user.RoleManager), filter)
	require.NoError(t, err)
	assert.Empty(t, resp.Groups)
	assert.Equal(t, 0, resp.Summary.TotalShifts)
}

func TestGetDailySalary_InvalidRange(t *testing.T) {
	svc := newTestService(&mockSalarySource{}, newFakeSnapshots())
	_, err := svc.GetDailySalary(ctxAs(t, "u-1", user.RoleEmployee), payroll.DailySalaryFilter{
		UserID: "u-1", From: "2025-02-01", To: "2025-01-01",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "from", verrs[0].Field)
}

func TestGetMonthlyHistory_SortsAndResolvesNet(t *testing.T) {
	source := &mockSalarySource{}
	source.On("MonthlyHistory", mock.Anything, "u-1").Return([]payroll.MonthlySalary{
		{Month: 11, Year: 2024, BaseSalary: dec("1000"), NetSalary: dec("1000")},
		{Month: 1, Year: 2025, BaseSalary: dec("1000"), ShiftSalary: dec("200"), Bonus: dec("50"), Penalty: dec("25")},
		{Month: 12, Year: 2024, NetSalary: dec("900")},
	}, nil)

	svc := newTestService(source, newFakeSnapshots())
	resp, err := svc.GetMonthlyHistory(ctxAs(t, "u-1", user.RoleEmployee), "u-1")
	require.NoError(t, err)

	require.Len(t, resp, 3)
	assert.Equal(t, []int{1, 12, 11}, []int{resp[0].Month, resp[1].Month, resp[2].Month})
	assert.True(t, resp[0].NetSalary.Equal(dec("1225")))
	assert.Equal(t, "1,225 USD", resp[0].NetSalaryFormatted)
}

func TestGetMonthlyHistory_SourceFailure(t *testing.T) {
	source := &mockSalarySource{}
	source.On("MonthlyHistory", mock.Anything, "u-1").Return(nil, context.DeadlineExceeded)

	svc := newTestService(source, newFakeSnapshots())
	_, err := svc.GetMonthlyHistory(ctxAs(t, "u-1", user.RoleEmployee), "u-1")
	assert.ErrorIs(t, err, payroll.ErrSalarySourceFailure)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGetOverview(t *testing.T) {
	source := &mockSalarySource{}
	source.On("DailySalary", mock.Anything, "u-1", mock.Anything, mock.Anything).Return(sampleShifts(), nil)
	source.On("MonthlyHistory", mock.Anything, "u-1").Return([]payroll.MonthlySalary{{Month: 1, Year: 2025, NetSalary: dec("10")}}, nil)

	svc := newTestService(source, newFakeSnapshots())
	overview, err := svc.GetOverview(ctxAs(t, "u-1", user.RoleEmployee), payroll.DailySalaryFilter{UserID: "u-1"})
	require.NoError(t, err)

	assert.Len(t, overview.Daily.Groups, 2)
	assert.Len(t, overview.Monthly, 1)
}

func TestGetOverview_PropagatesFailure(t *testing.T) {
	source := &mockSalarySource{}
	source.On("DailySalary", mock.Anything, "u-1", mock.Anything, mock.Anything).Return(sampleShifts(), nil)
	source.On("MonthlyHistory", mock.Anything, "u-1").Return(nil, errors.New("boom"))

	svc := newTestService(source, newFakeSnapshots())
	_, err := svc.GetOverview(ctxAs(t, "u-1", user.RoleEmployee), payroll.DailySalaryFilter{UserID: "u-1"})
	assert.ErrorIs(t, err, payroll.ErrSalarySourceFailure)
}

func TestExportDailySalary(t *testing.T) {
	source := &mockSalarySource{}
	source.On("DailySalary", mock.Anything, "u-1", mock.Anything, mock.Anything).Return(sampleShifts(), nil)

	svc := newTestService(source, newFakeSnapshots())
	data, err := svc.ExportDailySalary(ctxAs(t, "u-1", user.RoleEmployee), payroll.DailySalaryFilter{UserID: "u-1"})
	require.NoError(t, err)
	// xlsx files are zip archives
	assert.Equal(t, []byte("PK"), data[:2])
}

func TestSyncUser(t *testing.T) {
	source := &mockSalarySource{}
	records := append(sampleShifts(), payroll.ShiftRecord{Date: "garbage"})
	source.On("DailySalary", mock.Anything, "u-1", mock.Anything, mock.Anything).Return(records, nil)

	snapshots := newFakeSnapshots()
	svc := newTestService(source, snapshots)
	result, err := svc.SyncUser(context.Background(), payroll.DailySalaryFilter{UserID: "u-1", From: "2025-01-01", To: "2025-01-31"})
	require.NoError(t, err)

	assert.Equal(t, 3, result.RecordCount)
	assert.NotEmpty(t, result.RunID)
	require.Len(t, snapshots.runs, 1)
	assert.Equal(t, result.RunID, snapshots.runs[0].ID)
	assert.Nil(t, snapshots.runs[0].Error)
}

func TestSyncUser_RecordsFailedRun(t *testing.T) {
	source := &mockSalarySource{}
	source.On("DailySalary", mock.Anything, "u-1", mock.Anything, mock.Anything).Return(nil, errors.New("bad gateway"))

	snapshots := newFakeSnapshots()
	svc := newTestService(source, snapshots)
	_, err := svc.SyncUser(context.Background(), payroll.DailySalaryFilter{UserID: "u-1"})
	assert.ErrorIs(t, err, payroll.ErrSalarySourceFailure)

	require.Len(t, snapshots.runs, 1)
	require.NotNil(t, snapshots.runs[0].Error)
	assert.Equal(t, "bad gateway", *snapshots.runs[0].Error)
}
