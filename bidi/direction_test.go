package bidi_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"bidiflip/bidi"
)

func TestResolveSide(t *testing.T) {
	assert.Equal(t, bidi.PhysicalSideLeft, bidi.ResolveSide(bidi.LogicalSideStart, bidi.DirectionLtr))
	assert.Equal(t, bidi.PhysicalSideRight, bidi.ResolveSide(bidi.LogicalSideEnd, bidi.DirectionLtr))
	assert.Equal(t, bidi.PhysicalSideRight, bidi.ResolveSide(bidi.LogicalSideStart, bidi.DirectionRtl))
	assert.Equal(t, bidi.PhysicalSideLeft, bidi.ResolveSide(bidi.LogicalSideEnd, bidi.DirectionRtl))
}

func TestResolveSide_DiffersAcrossDirections(t *testing.T) {
	for _, side := range []bidi.LogicalSide{bidi.LogicalSideStart, bidi.LogicalSideEnd} {
		for _, dir := range []bidi.Direction{bidi.DirectionLtr, bidi.DirectionRtl} {
			assert.NotEqual(t, bidi.ResolveSide(side, dir), bidi.ResolveSide(side, dir.Flip()), "%s/%s", side, dir)
		}
	}
}

func TestRenameLogical(t *testing.T) {
	tests := []struct {
		name string
		dir  bidi.Direction
		want string
	}{
		{"margin-start", bidi.DirectionLtr, "margin-left"},
		{"margin-start", bidi.DirectionRtl, "margin-right"},
		{"border-end-width", bidi.DirectionLtr, "border-right-width"},
		{"border-top-start-radius", bidi.DirectionRtl, "border-top-right-radius"},
		{"start", bidi.DirectionRtl, "right"},
		{"end", bidi.DirectionRtl, "left"},
		{"ste", bidi.DirectionRtl, "rtl"},
		{"ets", bidi.DirectionRtl, "ltr"},
		{"ste", bidi.DirectionLtr, "ltr"},
		{"mix-blend-mode", bidi.DirectionRtl, "mix-blend-mode"},
		{"padding", bidi.DirectionRtl, "padding"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.dir.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, bidi.RenameLogical(tt.name, tt.dir))
		})
	}
}

func TestDirectionFromContext_Default(t *testing.T) {
	assert.Equal(t, bidi.DirectionLtr, bidi.DirectionFromContext(context.Background()))
}

func TestWithDirection_Restores(t *testing.T) {
	outer := bidi.ContextWithDirection(context.Background(), bidi.DirectionLtr)

	got, err := bidi.WithDirection(outer, bidi.DirectionRtl, func(ctx context.Context) (bidi.Direction, error) {
		return bidi.DirectionFromContext(ctx), nil
	})
	require.NoError(t, err)
	assert.Equal(t, bidi.DirectionRtl, got)
	assert.Equal(t, bidi.DirectionLtr, bidi.DirectionFromContext(outer))

	boom := errors.New("boom")
	_, err = bidi.WithDirection(outer, bidi.DirectionRtl, func(ctx context.Context) (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, bidi.DirectionLtr, bidi.DirectionFromContext(outer))

	// nested overrides follow stack discipline
	_, _ = bidi.WithDirection(outer, bidi.DirectionRtl, func(ctx context.Context) (struct{}, error) {
		_, _ = bidi.WithDirection(ctx, bidi.DirectionLtr, func(inner context.Context) (struct{}, error) {
			assert.Equal(t, bidi.DirectionLtr, bidi.DirectionFromContext(inner))
			return struct{}{}, nil
		})
		assert.Equal(t, bidi.DirectionRtl, bidi.DirectionFromContext(ctx))
		return struct{}{}, nil
	})
}

func TestDirectionForLanguage(t *testing.T) {
	tests := map[string]bidi.Direction{
		"ar":    bidi.DirectionRtl,
		"he":    bidi.DirectionRtl,
		"fa-IR": bidi.DirectionRtl,
		"ur":    bidi.DirectionRtl,
		"en-US": bidi.DirectionLtr,
		"ru":    bidi.DirectionLtr,
		"ja":    bidi.DirectionLtr,
	}
	for tag, want := range tests {
		t.Run(tag, func(t *testing.T) {
			assert.Equal(t, want, bidi.DirectionForLanguage(language.MustParse(tag)))
		})
	}
}

func TestParseDirection(t *testing.T) {
	d, err := bidi.ParseDirection("rtl")
	require.NoError(t, err)
	assert.Equal(t, bidi.DirectionRtl, d)

	_, err = bidi.ParseDirection("up")
	assert.ErrorIs(t, err, bidi.ErrInvalidDirection)
	assert.Equal(t, []string{"ltr", "rtl"}, bidi.DirectionNames())
}
