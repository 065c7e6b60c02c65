package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	o, err := New()
	require.NoError(t, err)
	require.Equal(t, ModLCtrl|ModRCtrl, o.ShortcutMods)
	require.Equal(t, BindingClick, o.Binding(ButtonRight))
	require.True(t, o.HasSecondaryClick())
}

func TestNewRejectsEmptyShortcutMods(t *testing.T) {
	_, err := New(WithShortcutMods(0))
	require.Error(t, err)
}

func TestWithMouseBindingOverridesDefault(t *testing.T) {
	o, err := New(WithMouseBinding(ButtonRight, BindingBack))
	require.NoError(t, err)
	require.Equal(t, BindingBack, o.Binding(ButtonRight))
	require.False(t, o.HasSecondaryClick())
}

func TestBindingDefaultsToDisabledWhenUnset(t *testing.T) {
	o, err := New(WithMouseBinding(ButtonRight, BindingBack))
	require.NoError(t, err)
	require.Equal(t, BindingDisabled, o.Binding(ButtonMiddle))
}

func TestModifierMaskHas(t *testing.T) {
	m := ModLCtrl | ModLAlt
	require.True(t, m.Has(ModLCtrl))
	require.True(t, m.Has(ModLAlt))
	require.False(t, m.Has(ModRCtrl))
}
