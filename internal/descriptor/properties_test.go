package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPropertiesPreserveDocumentOrder(t *testing.T) {
	src := "zulu: \"1\"\nalpha: \"2\"\nmike: \"3\"\n"

	var props Properties
	require.NoError(t, yaml.Unmarshal([]byte(src), &props))

	require.Len(t, props, 3)
	assert.Equal(t, Property{Key: "zulu", Value: "1"}, props[0])
	assert.Equal(t, Property{Key: "alpha", Value: "2"}, props[1])
	assert.Equal(t, Property{Key: "mike", Value: "3"}, props[2])
}

func TestPropertiesRoundTrip(t *testing.T) {
	props := Properties{
		{Key: "noCode", Value: "true"},
		{Key: "appName", Value: "demo"},
	}

	data, err := yaml.Marshal(props)
	require.NoError(t, err)

	var back Properties
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, props, back)
}

func TestPropertiesRejectNonMapping(t *testing.T) {
	var props Properties
	err := yaml.Unmarshal([]byte("- a\n- b\n"), &props)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a mapping")
}

func TestPropertiesSetOverwritesInPlace(t *testing.T) {
	props := Properties{
		{Key: "groupId", Value: "org.acme"},
		{Key: "package", Value: "org.acme.demo"},
	}

	props = props.Set("groupId", "com.example")
	props = props.Set("extra", "x")

	require.Len(t, props, 3)
	assert.Equal(t, "groupId", props[0].Key)
	assert.Equal(t, "com.example", props[0].Value)
	assert.Equal(t, "extra", props[2].Key)

	v, ok := props.Get("package")
	assert.True(t, ok)
	assert.Equal(t, "org.acme.demo", v)

	_, ok = props.Get("missing")
	assert.False(t, ok)
}
