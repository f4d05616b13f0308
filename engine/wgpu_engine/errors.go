// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package wgpu_engine

import (
	"fmt"
)

// DeviceInitError is a fatal construction failure: no usable device or
// queue, or a surface that cannot be configured for the device. It is
// returned once from New and never retried internally.
type DeviceInitError struct {
	Reason string
	Err    error
}

func (err *DeviceInitError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("initializing device: %s: %s", err.Reason, err.Err)
	}
	return fmt.Sprintf("initializing device: %s", err.Reason)
}

func (err *DeviceInitError) Unwrap() error { return err.Err }

// SurfaceAcquireError reports that no target texture was available for this
// frame, because the surface was busy or lost. The frame was skipped before
// any GPU commands were issued; engine state is unaffected and the next
// RenderFrame call starts fresh.
type SurfaceAcquireError struct {
	Err error
}

func (err *SurfaceAcquireError) Error() string {
	return fmt.Sprintf("acquiring surface texture: %s", err.Err)
}

func (err *SurfaceAcquireError) Unwrap() error { return err.Err }

// ReconfigureError reports invalid resize parameters. Existing buffers and
// the pipeline are untouched; the caller may retry with valid dimensions.
type ReconfigureError struct {
	Width, Height uint32
	Err           error
}

func (err *ReconfigureError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("reconfiguring surface to %dx%d: %s", err.Width, err.Height, err.Err)
	}
	return fmt.Sprintf("reconfiguring surface to %dx%d: invalid dimensions", err.Width, err.Height)
}

func (err *ReconfigureError) Unwrap() error { return err.Err }
