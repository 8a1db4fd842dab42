package smd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"

	"smd-steady/smd/dframe"
	"smd-steady/smd/dnode"
)

type EndToEndTestSuite struct {
	suite.Suite
	SampleDataPaths []string
}

func (s *EndToEndTestSuite) SetupSuite() {
	paths, err := filepath.Glob("../sample_data/*.smd")
	s.Require().NoError(err)
	s.Require().NotEmpty(paths)
	s.SampleDataPaths = paths
}

func (s *EndToEndTestSuite) decodeFile(path string) (*dnode.Skeleton, dframe.Animation) {
	bs, err := os.ReadFile(path)
	s.Require().NoError(err, path)
	skeleton, animation, err := DecodeReader(bytes.NewReader(bs), DecodeOptions{})
	s.Require().NoError(err, path)
	return skeleton, animation
}

func (s *EndToEndTestSuite) assertScaled(
	path string,
	expected dframe.Animation,
	actual dframe.Animation,
	scale float64,
) {
	s.Require().Len(actual, len(expected), path)
	for i, frame := range expected {
		s.Equal(frame.Keys(), actual[i].Keys(), "%s frame %d", path, i)
		frame.Each(func(name string, transform dframe.Transform) bool {
			actualTransform, _ := actual[i].Get(name)
			s.Require().Len(actualTransform, len(transform))
			for channel, value := range transform {
				s.InDelta(value*scale, actualTransform[channel], 1e-6, "%s frame %d bone %s", path, i, name)
			}
			return true
		})
	}
}

func (s *EndToEndTestSuite) TestRoundTrip() {
	for _, path := range s.SampleDataPaths {
		skeleton, animation := s.decodeFile(path)

		text, err := EncodeString(skeleton, animation, DefaultScale)
		s.Require().NoError(err, path)
		skeleton2, animation2, err := Decode(text, nil)
		s.Require().NoError(err, path)

		s.Equal(skeleton.Nodes(), skeleton2.Nodes(), path)
		s.assertScaled(path, animation, animation2, 1)

		// a second pass is byte stable
		text2, err := EncodeString(skeleton2, animation2, DefaultScale)
		s.Require().NoError(err, path)
		s.Equal(text, text2, path)
	}
}

func (s *EndToEndTestSuite) TestScaleLinearity() {
	for _, path := range s.SampleDataPaths {
		skeleton, animation := s.decodeFile(path)
		for _, scale := range []float64{2, -1, 0.5, 0, 1000} {
			text, err := EncodeString(skeleton, animation, scale)
			s.Require().NoError(err, path)
			_, scaled, err := Decode(text, nil)
			s.Require().NoError(err, path)
			s.assertScaled(path, animation, scaled, scale)
		}
	}
}

func (s *EndToEndTestSuite) TestIgnoreFiltering() {
	bs, err := os.ReadFile("../sample_data/walk.smd")
	s.Require().NoError(err)

	skeleton, animation, err := Decode(string(bs), NewIgnoreSet("ValveBiped.weapon_bone"))
	s.Require().NoError(err)

	s.Equal(6, skeleton.Len())
	s.Len(animation, 3)
	s.NotContains(animation.BoneNames(), "ValveBiped.weapon_bone")

	text, err := EncodeString(skeleton, animation, DefaultScale)
	s.Require().NoError(err)
	s.Contains(text, `5 "ValveBiped.weapon_bone" 4`)
	s.NotContains(text, "\n5 1.000000")
}

func (s *EndToEndTestSuite) TestFinalFrameWithoutTrailingMarker() {
	_, animation := s.decodeFile("../sample_data/walk.smd")
	s.Require().Len(animation, 3)

	last, _ := lo.Last(animation)
	pelvis, ok := last.Get("pelvis")
	s.Require().True(ok)
	s.Equal(dframe.Transform{1, 3.5, 38, 1.570796, 0.04, 0}, pelvis)
}

func (s *EndToEndTestSuite) TestCRLFAndLayout() {
	skeleton, animation := s.decodeFile("../sample_data/two_bones_crlf.smd")
	s.Equal([]string{"root", "child"}, skeleton.Names())
	s.Len(animation, 2)

	skeleton, animation = s.decodeFile("../sample_data/reference_mesh.smd")
	s.Equal([]string{"hips", "Left Thigh", "Right Thigh"}, skeleton.Names())
	s.Require().Len(animation, 1)
	s.Equal([]string{"hips", "Left Thigh", "Right Thigh"}, animation[0].Keys())
}

func (s *EndToEndTestSuite) TestIsSMDFile() {
	for _, path := range s.SampleDataPaths {
		bs, err := os.ReadFile(path)
		s.Require().NoError(err)
		s.True(IsSMDFile(string(bs)), path)
	}
}

func TestEndToEndTestSuite(t *testing.T) {
	suite.Run(t, new(EndToEndTestSuite))
}
