package app

import (
	"context"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"

	"datalens/adapters/ingest"
	"datalens/adapters/stats/engine"
	"datalens/domain/core"
	"datalens/internal/errors"
	"datalens/internal/testkit"
	"datalens/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRecordServiceCRUD(t *testing.T) {
	repo := testkit.NewMemoryRecordRepository()
	svc := NewRecordService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.CreateRecordRequest{
		Name: "Alice", Age: 30, Salary: 50000, Department: "Engineering", Experience: 5,
	})
	require.NoError(t, err)
	assert.False(t, created.ID.IsEmpty())

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", *got.Name)

	newSalary := 60000.0
	updated, err := svc.Update(ctx, created.ID, models.UpdateRecordRequest{Salary: &newSalary})
	require.NoError(t, err)
	assert.Equal(t, 60000.0, *updated.Salary)
	assert.Equal(t, "Alice", *updated.Name, "unset fields stay unchanged")

	require.NoError(t, svc.Delete(ctx, created.ID))

	err = svc.Delete(ctx, created.ID)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestRecordServiceValidation(t *testing.T) {
	svc := NewRecordService(testkit.NewMemoryRecordRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateRecordRequest{Name: "  ", Age: 30})
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	_, err = svc.Create(ctx, models.CreateRecordRequest{Name: "Bob", Age: -1})
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	_, err = svc.Update(ctx, core.NewID(), models.UpdateRecordRequest{})
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestRecordServicePagination(t *testing.T) {
	repo := testkit.NewMemoryRecordRepository()
	svc := NewRecordService(repo)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := svc.Create(ctx, models.CreateRecordRequest{
			Name: "R", Age: i, Salary: 100, Department: "D", Experience: 1,
		})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 3, 10)
	require.NoError(t, err)
	assert.Len(t, page.Records, 5)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 3, page.TotalPages)
}

func TestUploadServiceIngest(t *testing.T) {
	repo := testkit.NewMemoryRecordRepository()
	svc := NewUploadService(ingest.NewDataReader(testLogger()), repo, testLogger())

	csvData := strings.Join([]string{
		"Name,Age,Salary,Department,Experience",
		"Alice,30,50000,Engineering,5",
		"Bob,,42000.5,HR,2",
		"Cara,28,not-a-number,Engineering,",
	}, "\n")

	result, err := svc.Ingest(context.Background(), "staff.csv", strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 3, result.RowsProcessed)
	assert.Equal(t, []string{"Name", "Age", "Salary", "Department", "Experience"}, result.Columns)

	records := repo.Records()
	require.Len(t, records, 3)
	assert.Nil(t, records[1].Age, "blank cell becomes null")
	assert.Nil(t, records[2].Salary, "unparsable cell becomes null")
	assert.Nil(t, records[2].Experience)
	assert.Equal(t, 42000.5, *records[1].Salary)
}

func TestUploadServiceRejectsMissingColumns(t *testing.T) {
	svc := NewUploadService(ingest.NewDataReader(testLogger()), testkit.NewMemoryRecordRepository(), testLogger())

	_, err := svc.Ingest(context.Background(), "bad.csv", strings.NewReader("Name,Age\nAlice,30\n"))
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestAnalysisServiceEndToEnd(t *testing.T) {
	repo := testkit.NewMemoryRecordRepository()
	uploads := NewUploadService(ingest.NewDataReader(testLogger()), repo, testLogger())
	analysis := NewAnalysisService(repo, engine.NewSummarizer(), testLogger())
	ctx := context.Background()

	csvData := strings.Join([]string{
		"Name,Age,Salary,Department,Experience",
		"Alice,20,50000,A,5",
		"Bob,30,42000,B,2",
		"Cara,30,61000,A,7",
		"Dan,40,55000,A,9",
		"Eve,,47000,C,1",
	}, "\n")
	_, err := uploads.Ingest(ctx, "staff.csv", strings.NewReader(csvData))
	require.NoError(t, err)

	report, err := analysis.Analyze(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5, report.BasicInfo.TotalRows)
	assert.Equal(t, 1, report.MissingValues["age"])

	age := report.NumericStats["age"]
	assert.Equal(t, 30.0, age.Mean)
	assert.Equal(t, 20.0, age.Min)
	assert.Equal(t, 40.0, age.Max)

	dept := report.CategoricalStats["department"]
	assert.Equal(t, []string{"A", "B", "C"}, dept.Labels)
	assert.Equal(t, []int{3, 1, 1}, dept.Values)
	assert.Equal(t, 3, dept.UniqueValues)
}

func TestAnalysisServiceNoData(t *testing.T) {
	analysis := NewAnalysisService(testkit.NewMemoryRecordRepository(), engine.NewSummarizer(), testLogger())

	_, err := analysis.Analyze(context.Background())
	assert.Equal(t, errors.CodeDataUnavailable, errors.GetCode(err))
}

func TestAnalysisServiceStoreFailure(t *testing.T) {
	repo := testkit.NewMemoryRecordRepository()
	repo.FailAll = true
	analysis := NewAnalysisService(repo, engine.NewSummarizer(), testLogger())

	_, err := analysis.Analyze(context.Background())
	assert.Equal(t, errors.CodeComputationFailed, errors.GetCode(err))
	assert.True(t, stderrors.Is(err, testkit.ErrStoreDown))
}
