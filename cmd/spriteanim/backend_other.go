//go:build !linux
// +build !linux

package main

import (
	"errors"

	"github.com/rmcsoft/spriteanim"
	"github.com/sirupsen/logrus"
)

func newKMSDRMPlatform(cardNum int, pixFormat spriteanim.PixelFormat, frameRate int, log logrus.FieldLogger) (spriteanim.Platform, error) {
	return nil, errors.New("The kmsdrm backend is only available on Linux")
}
