package stabilize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smd-steady/smd/derr"
	"smd-steady/smd/dframe"
)

func makeAnimation(frames ...map[string]dframe.Transform) dframe.Animation {
	animation := make(dframe.Animation, 0, len(frames))
	for _, bones := range frames {
		frame := dframe.NewFrame()
		for _, name := range []string{"root", "pelvis", "spine"} {
			if transform, ok := bones[name]; ok {
				frame.Put(name, transform)
			}
		}
		animation = append(animation, frame)
	}
	return animation
}

func walkAnimation() dframe.Animation {
	return makeAnimation(
		map[string]dframe.Transform{
			"root":   {0, 0, 0, 0, 0, 0},
			"pelvis": {1, 2, 3, 0.1, 0.2, 0.3},
			"spine":  {5, 5, 5, 0, 0, 0},
		},
		map[string]dframe.Transform{
			"root":   {0, 0, 0, 0, 0, 0},
			"pelvis": {1.5, 2.5, 3.5, 0.4, 0.5, 0.6},
			"spine":  {6, 6, 6, 0, 0, 0},
		},
		map[string]dframe.Transform{
			"pelvis": {2, 3, 4, 0.7, 0.8, 0.9},
			"spine":  {7, 7, 7, 0, 0, 0},
		},
	)
}

func get(t *testing.T, animation dframe.Animation, frame int, bone string) dframe.Transform {
	transform, ok := animation[frame].Get(bone)
	require.True(t, ok, "frame %d bone %s", frame, bone)
	return transform
}

func TestStabilize_TranslationChannels(t *testing.T) {
	animation := walkAnimation()
	require.NoError(t, Stabilize(animation, []string{"pelvis"}))

	assert.Equal(t, dframe.Transform{1, 2, 3, 0.1, 0.2, 0.3}, get(t, animation, 0, "pelvis"))
	assert.Equal(t, dframe.Transform{1, 2, 3, 0.4, 0.5, 0.6}, get(t, animation, 1, "pelvis"))
	assert.Equal(t, dframe.Transform{1, 2, 3, 0.7, 0.8, 0.9}, get(t, animation, 2, "pelvis"))
	assert.Equal(t, dframe.Transform{7, 7, 7, 0, 0, 0}, get(t, animation, 2, "spine"))
}

func TestStabilize_LegacyChannels(t *testing.T) {
	animation := walkAnimation()
	require.NoError(t, Stabilize(animation, []string{"pelvis"}, WithChannels(LegacyChannels)))

	assert.Equal(t, dframe.Transform{1.5, 2, 3.5, 0.4, 0.5, 0.6}, get(t, animation, 1, "pelvis"))
	assert.Equal(t, dframe.Transform{2, 2, 4, 0.7, 0.8, 0.9}, get(t, animation, 2, "pelvis"))
}

func TestStabilize_Idempotent(t *testing.T) {
	once := walkAnimation()
	require.NoError(t, Stabilize(once, []string{"pelvis", "spine"}))

	twice := once.Clone()
	require.NoError(t, Stabilize(twice, []string{"pelvis", "spine"}))

	assert.Equal(t, once, twice)
}

func TestStabilize_EmptyAnimation(t *testing.T) {
	animation := dframe.Animation{}
	assert.NoError(t, Stabilize(animation, []string{"pelvis"}))
	assert.Empty(t, animation)

	assert.NoError(t, Stabilize(nil, nil))
}

func TestStabilize_NoBaseBones(t *testing.T) {
	assert.ErrorIs(t, Stabilize(walkAnimation(), nil), ErrNoBaseBones)
}

func TestStabilize_MissingInFirstFrame(t *testing.T) {
	animation := walkAnimation()
	err := Stabilize(animation, []string{"cam_driver"})

	var lookupErr derr.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "cam_driver", lookupErr.Key)
	assert.Equal(t, "frame 0", lookupErr.Where)
	// nothing was touched
	assert.Equal(t, walkAnimation(), animation)
}

func TestStabilize_LenientSkipsLaterFrame(t *testing.T) {
	animation := walkAnimation()
	skipped := make([]int, 0)
	err := Stabilize(
		animation,
		[]string{"root"},
		WithSkipHook(func(frame int, bone string) {
			assert.Equal(t, "root", bone)
			skipped = append(skipped, frame)
		}),
	)

	require.NoError(t, err)
	assert.Equal(t, []int{2}, skipped)
	assert.False(t, animation[2].Has("root"))
}

func TestStabilize_StrictFailsOnLaterFrame(t *testing.T) {
	err := Stabilize(walkAnimation(), []string{"root"}, WithStrict(true))

	var lookupErr derr.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "root", lookupErr.Key)
	assert.Equal(t, "frame 2", lookupErr.Where)
}

func TestStabilize_ChannelOutOfRange(t *testing.T) {
	err := Stabilize(walkAnimation(), []string{"pelvis"}, WithChannels([]int{0, 6}))

	var lookupErr derr.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, derr.LookupKindChannel, lookupErr.Kind)
	assert.Equal(t, "6", lookupErr.Key)
}

func TestStabilize_ShortLaterTransform(t *testing.T) {
	animation := makeAnimation(
		map[string]dframe.Transform{"pelvis": {1, 2, 3}},
		map[string]dframe.Transform{"pelvis": {4}},
	)
	err := Stabilize(animation, []string{"pelvis"})
	assert.True(t, derr.IsLookupError(err))
}

func TestStabilize_FailureLeavesAnimationUntouched(t *testing.T) {
	strict := makeAnimation(
		map[string]dframe.Transform{"root": {0, 0, 0, 0, 0, 0}},
		map[string]dframe.Transform{"root": {5, 5, 5, 0, 0, 0}},
		map[string]dframe.Transform{"spine": {1, 1, 1, 0, 0, 0}},
	)
	err := Stabilize(strict, []string{"root"}, WithStrict(true))
	require.True(t, derr.IsLookupError(err))
	assert.Equal(t, dframe.Transform{5, 5, 5, 0, 0, 0}, get(t, strict, 1, "root"))

	short := makeAnimation(
		map[string]dframe.Transform{"pelvis": {1, 2, 3}},
		map[string]dframe.Transform{"pelvis": {4, 5, 6}},
		map[string]dframe.Transform{"pelvis": {7}},
	)
	err = Stabilize(short, []string{"pelvis"})
	require.True(t, derr.IsLookupError(err))
	assert.Equal(t, dframe.Transform{4, 5, 6}, get(t, short, 1, "pelvis"))
}

func TestStabilize_TwoBoneScenario(t *testing.T) {
	animation := makeAnimation(
		map[string]dframe.Transform{"root": {0, 0, 0, 0, 0, 0}, "spine": {1, 0, 0, 0, 0, 0}},
		map[string]dframe.Transform{"root": {0, 0, 0, 0, 0, 0}, "spine": {2, 0, 0, 0, 0, 0}},
	)
	require.NoError(t, Stabilize(animation, []string{"root"}, WithChannels(TranslationChannels)))

	assert.Equal(t, dframe.Transform{0, 0, 0, 0, 0, 0}, get(t, animation, 1, "root"))
	assert.Equal(t, dframe.Transform{2, 0, 0, 0, 0, 0}, get(t, animation, 1, "spine"))
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, TranslationChannels)
	assert.Equal(t, []int{1}, LegacyChannels)
}
