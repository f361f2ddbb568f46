package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, `$1`, placeholder(1))
	assert.Equal(t, `$13`, placeholder(13))
}

func TestTemplate(t *testing.T) {
	tpl := template()
	require.NotNil(t, tpl)
	require.NotNil(t, tpl.Cache)
}
