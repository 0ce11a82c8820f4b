package main

import (
	"github.com/rmcsoft/spriteanim"
	"github.com/rmcsoft/spriteanim/kmsengine"
	"github.com/sirupsen/logrus"
)

func newKMSDRMPlatform(cardNum int, pixFormat spriteanim.PixelFormat, frameRate int, log logrus.FieldLogger) (spriteanim.Platform, error) {
	return &kmsengine.Platform{
		CardNum:   cardNum,
		PixFormat: pixFormat,
		FrameRate: frameRate,
		Log:       log,
	}, nil
}
