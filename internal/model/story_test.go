package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// published 不能声明列默认值：GORM 会在插入时用默认值顶替零值，
// 显式的 false 将被写成默认值，草稿一落库就变成已发布。
func TestStoryPublished_NoColumnDefault(t *testing.T) {
	s, err := schema.Parse(&Story{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	field := s.LookUpField("published")
	require.NotNil(t, field)
	assert.False(t, field.HasDefaultValue)
	assert.Empty(t, field.DefaultValue)
}
