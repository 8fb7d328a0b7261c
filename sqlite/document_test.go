package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/srcdoc"
	"github.com/fwojciec/srcdoc/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentService_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, hash and size", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		run := createTestRun(t, sqlite.NewRunService(db))
		svc := sqlite.NewDocumentService(db)

		doc := &srcdoc.Document{
			RunID:      run.ID,
			SourcePath: "lib/parse.js",
			OutputPath: "/docs/lib/parse.md",
			Content:    "# parse.js",
		}
		require.NoError(t, svc.CreateDocument(context.Background(), doc))

		assert.NotEmpty(t, doc.ID)
		assert.NotEmpty(t, doc.ContentHash)
		assert.Equal(t, len("# parse.js"), doc.Bytes)
		assert.False(t, doc.GeneratedAt.IsZero())
	})

	t.Run("identical content hashes identically", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		run := createTestRun(t, sqlite.NewRunService(db))
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		a := &srcdoc.Document{RunID: run.ID, SourcePath: "a.js", Content: "same"}
		b := &srcdoc.Document{RunID: run.ID, SourcePath: "b.js", Content: "same"}
		require.NoError(t, svc.CreateDocument(ctx, a))
		require.NoError(t, svc.CreateDocument(ctx, b))

		assert.Equal(t, a.ContentHash, b.ContentHash)
	})

	t.Run("rejects invalid document", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(mustOpenDB(t))
		err := svc.CreateDocument(context.Background(), &srcdoc.Document{SourcePath: "a.js"})

		require.Error(t, err)
		assert.Equal(t, srcdoc.EINVALID, srcdoc.ErrorCode(err))
	})
}

func TestDocumentService_FindDocumentByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a document", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		run := createTestRun(t, sqlite.NewRunService(db))
		svc := sqlite.NewDocumentService(db)

		doc := &srcdoc.Document{
			RunID:      run.ID,
			SourcePath: "lib/parse.js",
			Content:    "# parse.js",
			Position:   3,
		}
		require.NoError(t, svc.CreateDocument(context.Background(), doc))

		found, err := svc.FindDocumentByID(context.Background(), doc.ID)

		require.NoError(t, err)
		assert.Equal(t, "lib/parse.js", found.SourcePath)
		assert.Equal(t, "# parse.js", found.Content)
		assert.Equal(t, 3, found.Position)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(mustOpenDB(t))
		_, err := svc.FindDocumentByID(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, srcdoc.ENOTFOUND, srcdoc.ErrorCode(err))
	})
}

func TestDocumentService_FindDocuments(t *testing.T) {
	t.Parallel()

	t.Run("filters by run and sorts by position", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		runs := sqlite.NewRunService(db)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		runA := createTestRun(t, runs)
		runB := createTestRun(t, runs)

		require.NoError(t, svc.CreateDocument(ctx, &srcdoc.Document{RunID: runA.ID, SourcePath: "b.js", Position: 1}))
		require.NoError(t, svc.CreateDocument(ctx, &srcdoc.Document{RunID: runA.ID, SourcePath: "a.js", Position: 0}))
		require.NoError(t, svc.CreateDocument(ctx, &srcdoc.Document{RunID: runB.ID, SourcePath: "c.js", Position: 0}))

		docs, err := svc.FindDocuments(ctx, srcdoc.DocumentFilter{
			RunID:  &runA.ID,
			SortBy: srcdoc.SortByPosition,
		})

		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "a.js", docs[0].SourcePath)
		assert.Equal(t, "b.js", docs[1].SourcePath)
	})

	t.Run("filters by source path", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		run := createTestRun(t, sqlite.NewRunService(db))
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateDocument(ctx, &srcdoc.Document{RunID: run.ID, SourcePath: "a.js"}))
		require.NoError(t, svc.CreateDocument(ctx, &srcdoc.Document{RunID: run.ID, SourcePath: "b.js"}))

		path := "a.js"
		docs, err := svc.FindDocuments(ctx, srcdoc.DocumentFilter{SourcePath: &path})

		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "a.js", docs[0].SourcePath)
	})
}

func TestDocumentService_DeleteDocumentsByRun(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	runs := sqlite.NewRunService(db)
	svc := sqlite.NewDocumentService(db)
	ctx := context.Background()

	runA := createTestRun(t, runs)
	runB := createTestRun(t, runs)
	require.NoError(t, svc.CreateDocument(ctx, &srcdoc.Document{RunID: runA.ID, SourcePath: "a.js"}))
	require.NoError(t, svc.CreateDocument(ctx, &srcdoc.Document{RunID: runB.ID, SourcePath: "b.js"}))

	require.NoError(t, svc.DeleteDocumentsByRun(ctx, runA.ID))

	remaining, err := svc.FindDocuments(ctx, srcdoc.DocumentFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, runB.ID, remaining[0].RunID)
}
