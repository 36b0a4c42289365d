/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package di provides dependency injection support for fjson value
// construction. It defines a standard factory interface and provider for
// integration with Go DI frameworks such as Google Wire.
//
// Example usage with Google Wire:
//
//	// wire.go
//	//go:build wireinject
//	// +build wireinject
//
//	package main
//
//	import (
//	    "github.com/google/wire"
//	    "github.com/kcenon/go_fjson/fjson/di"
//	)
//
//	func InitializeApp() (*App, error) {
//	    wire.Build(di.ProviderSet, NewApp)
//	    return nil, nil
//	}
package di

import (
	"github.com/kcenon/go_fjson/fjson"
	"github.com/kcenon/go_fjson/fjson/fluent"
)

// ValueFactory defines the interface for creating fjson values. This
// interface allows for easy mocking in tests and provides a standard
// abstraction for value creation across an application.
type ValueFactory interface {
	// NewObject creates a new empty object value.
	NewObject() *fjson.Value

	// NewArray creates a new empty array value.
	NewArray() *fjson.Value

	// NewObjectBuilder creates a new fluent object builder.
	NewObjectBuilder() *fluent.ObjectBuilder

	// NewArrayBuilder creates a new fluent array builder.
	NewArrayBuilder() *fluent.ArrayBuilder
}

// DefaultValueFactory is the default implementation of ValueFactory. It
// creates values using the standard constructors from the fjson package.
type DefaultValueFactory struct{}

// NewValueFactory creates a new ValueFactory instance. This is the provider
// function for dependency injection frameworks.
func NewValueFactory() ValueFactory {
	return &DefaultValueFactory{}
}

// NewObject creates a new empty object value.
func (f *DefaultValueFactory) NewObject() *fjson.Value {
	return fjson.NewObject()
}

// NewArray creates a new empty array value.
func (f *DefaultValueFactory) NewArray() *fjson.Value {
	return fjson.NewArray()
}

// NewObjectBuilder creates a new fluent object builder.
func (f *DefaultValueFactory) NewObjectBuilder() *fluent.ObjectBuilder {
	return fluent.NewObjectBuilder()
}

// NewArrayBuilder creates a new fluent array builder.
func (f *DefaultValueFactory) NewArrayBuilder() *fluent.ArrayBuilder {
	return fluent.NewArrayBuilder()
}
