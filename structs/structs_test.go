package main

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sourceUser() User {
	return User{
		Active:      true,
		Username:    "someusername123",
		Email:       "a@x.com",
		SignInCount: 1,
	}
}

// ── Copy with overrides ──────────────────────────────────────────────────────

// TestWithOverridesOnlyNamedFields checks that every other field is copied.
func TestWithOverridesOnlyNamedFields(t *testing.T) {
	src := sourceUser()
	derived := src.With(WithEmail("b@x.com"))

	want := src
	want.Email = "b@x.com"
	if diff := cmp.Diff(want, derived); diff != "" {
		t.Errorf("derived user mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(sourceUser(), src); diff != "" {
		t.Errorf("source user modified (-want +got):\n%s", diff)
	}
}

func TestWithAppliesInOrder(t *testing.T) {
	u := sourceUser().With(
		WithActive(false),
		WithUsername("other"),
		WithSignInCount(7),
		WithEmail("first@x.com"),
		WithEmail("last@x.com"),
	)

	want := User{Active: false, Username: "other", Email: "last@x.com", SignInCount: 7}
	if diff := cmp.Diff(want, u); diff != "" {
		t.Errorf("With mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, sourceUser(), sourceUser().With(), "no options is a plain copy")
}

func TestBuildUser(t *testing.T) {
	u := buildUser("someone@example.com", "someusername123")
	assert.Equal(t, User{
		Active:      true,
		Username:    "someusername123",
		Email:       "someone@example.com",
		SignInCount: 1,
	}, u)
}

// ── Positional types ─────────────────────────────────────────────────────────

// TestPositionalTypesAreDistinct verifies Color and Point do not mix implicitly.
func TestPositionalTypesAreDistinct(t *testing.T) {
	ct := reflect.TypeOf(Color{})
	pt := reflect.TypeOf(Point{})

	assert.NotEqual(t, ct, pt)
	assert.False(t, ct.AssignableTo(pt))
	assert.True(t, ct.ConvertibleTo(pt), "explicit conversion is allowed")

	red := Color{255, 0, 0}
	assert.Equal(t, int32(255), red[0])
	assert.Equal(t, "rgb(255, 0, 0)", red.String())
	assert.Equal(t, "(255, 0, 0)", Point(red).String())
}

// ── Tags ─────────────────────────────────────────────────────────────────────

func TestYAMLUsesTags(t *testing.T) {
	out, err := yaml.Marshal(sourceUser())
	require.NoError(t, err)

	assert.Equal(t, "active: true\nusername: someusername123\nemail: a@x.com\nsign_in_count: 1\n", string(out))

	var back User
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, sourceUser(), back)
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a: 1\n  b: 2\n", indent([]byte("a: 1\nb: 2\n")))
	assert.Equal(t, "  a: 1\n", indent([]byte("a: 1")))
}

func TestDemoOutput(t *testing.T) {
	var buf bytes.Buffer
	demoNamedFields(&buf)
	demoUpdate(&buf)
	demoPositional(&buf)
	require.NoError(t, demoTags(&buf))
	out := buf.String()

	for _, want := range []string{
		"Hello, anotheremail@example.com!",
		"Hello, someusername123!",
		"Hello, another@example.com!",
		"user1 untouched: someone@example.com",
		"user4 = {Active:true Username:someusername123 Email:b@x.com SignInCount:2}",
		"black = rgb(0, 0, 0), origin = (0, 0, 0)",
		"types: main.Color vs main.Point",
		"  email: another@example.com\n",
		"decoded equals original: true",
	} {
		assert.Contains(t, out, want)
	}
}
