package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook_Validate(t *testing.T) {
	tests := map[string]struct {
		book         Book
		wantMessages []string
	}{
		"valid-book": {
			book: Book{Title: "As aventuras", Author: "Cesar", ISBN: "001"},
		},
		"empty-title": {
			book:         Book{Author: "Cesar", ISBN: "001"},
			wantMessages: []string{"title must not be empty"},
		},
		"blank-author": {
			book:         Book{Title: "As aventuras", Author: "   ", ISBN: "001"},
			wantMessages: []string{"author must not be empty"},
		},
		"all-fields-empty-in-declaration-order": {
			book: Book{},
			wantMessages: []string{
				"title must not be empty",
				"author must not be empty",
				"isbn must not be empty",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.book.Validate()
			if tt.wantMessages == nil {
				assert.NoError(t, err)
				return
			}

			var vErr *ValidationErr
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantMessages, vErr.Messages())
		})
	}
}
