package vanban_test

import (
	"testing"

	"github.com/hqanh/vanban"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid with ID and number", func(t *testing.T) {
		t.Parallel()
		doc := &vanban.Document{ID: "36_2024_QH15", Number: "36/2024/QH15"}
		assert.NoError(t, doc.Validate())
	})

	t.Run("valid with ID and source URL", func(t *testing.T) {
		t.Parallel()
		doc := &vanban.Document{ID: "doc1", SourceURL: "https://example.vn/doc1"}
		assert.NoError(t, doc.Validate())
	})

	t.Run("requires ID", func(t *testing.T) {
		t.Parallel()
		doc := &vanban.Document{Number: "36/2024/QH15"}
		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, vanban.EINVALID, vanban.ErrorCode(err))
	})

	t.Run("requires number or source URL", func(t *testing.T) {
		t.Parallel()
		doc := &vanban.Document{ID: "doc1"}
		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, vanban.EINVALID, vanban.ErrorCode(err))
	})
}
