// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	assert.Equal(t, "testKey", key.String())
}

func TestTraceIDCtxKey(t *testing.T) {
	assert.Equal(t, "traceID", TraceIDCtxKey.String())
}

func TestGetTraceIDFromContext_Success(t *testing.T) {
	ctx := WithTraceID(context.Background(), "trace-42")

	traceID, ok := GetTraceIDFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, "trace-42", traceID)
}

func TestGetTraceIDFromContext_Missing(t *testing.T) {
	traceID, ok := GetTraceIDFromContext(context.Background())

	assert.False(t, ok)
	assert.Empty(t, traceID)
}

func TestGetTraceIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, 42)

	_, ok := GetTraceIDFromContext(ctx)

	assert.False(t, ok)
}

func TestGetTraceIDFromContext_Empty(t *testing.T) {
	_, ok := GetTraceIDFromContext(WithTraceID(context.Background(), ""))

	assert.False(t, ok)
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()

	first, second := g.Generate(), g.Generate()

	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
}
