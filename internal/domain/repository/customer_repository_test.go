package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewecarreira/pedidos-api/internal/domain"
)

func TestParseSortDirection(t *testing.T) {
	cases := []struct {
		in      string
		want    SortDirection
		wantErr bool
	}{
		{in: "ASC", want: SortAsc},
		{in: "DESC", want: SortDesc},
		{in: "asc", wantErr: true}, // el enum es estricto, sin normalización
		{in: "DESCENDING", wantErr: true},
		{in: "", wantErr: true},
		{in: "nome; DROP TABLE clientes", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseSortDirection(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
