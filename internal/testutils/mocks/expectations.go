// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/CWSpear/stumpy/internal/entities"
	"github.com/CWSpear/stumpy/internal/repositories/settings"
	settingsmock "github.com/CWSpear/stumpy/internal/repositories/settings/mock"
	"github.com/CWSpear/stumpy/internal/repositories/snapshots"
	snapshotmock "github.com/CWSpear/stumpy/internal/repositories/snapshots/mock"
)

// ExpectSettingsSave sets up a mock expectation for persisting a profile's
// settings
func ExpectSettingsSave(
	ctx context.Context, mockRepo *settingsmock.MockRepository,
	profile string, s entities.Settings, err error,
) {
	var out *settings.SaveOutput
	if err == nil {
		out = &settings.SaveOutput{}
	}

	mockRepo.EXPECT().
		Save(ctx, &settings.SaveInput{Profile: profile, Settings: s}).
		Return(out, err)
}

// ExpectSnapshotGet sets up a mock expectation for reading a snapshot
func ExpectSnapshotGet(
	ctx context.Context, mockRepo *snapshotmock.MockRepository,
	id string, snap *snapshots.Snapshot, err error,
) {
	var out *snapshots.GetOutput
	if err == nil {
		out = &snapshots.GetOutput{Snapshot: snap}
	}

	mockRepo.EXPECT().
		Get(ctx, &snapshots.GetInput{ID: id}).
		Return(out, err)
}

// CaptureSnapshotSave sets up a mock expectation for saving a snapshot and
// returns a func yielding whatever was saved
func CaptureSnapshotSave(ctx context.Context, mockRepo *snapshotmock.MockRepository) func() *snapshots.SaveInput {
	var captured *snapshots.SaveInput

	mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *snapshots.SaveInput) (*snapshots.SaveOutput, error) {
			captured = input
			return &snapshots.SaveOutput{Snapshot: input.Snapshot}, nil
		})

	return func() *snapshots.SaveInput {
		return captured
	}
}
