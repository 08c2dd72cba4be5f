// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/mock"
	"github.com/MKhiriev/go-tube/internal/store"
	"github.com/MKhiriev/go-tube/models"
)

func TestCategoryService_GetMany(t *testing.T) {
	ctrl := gomock.NewController(t)
	categories := mock.NewMockCategoryRepository(ctrl)
	svc := NewCategoryService(categories, logger.Nop())

	want := []models.Category{{ID: "c-1", Name: "Comedy"}, {ID: "c-2", Name: "Music"}}
	categories.EXPECT().GetMany(gomock.Any()).Return(want, nil)

	got, err := svc.GetMany(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	categories.EXPECT().GetMany(gomock.Any()).Return(nil, store.ErrExecutingQuery)
	_, err = svc.GetMany(context.Background())
	require.ErrorIs(t, err, store.ErrExecutingQuery)
}
