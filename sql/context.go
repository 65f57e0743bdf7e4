// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sql

import (
	"context"

	"github.com/google/uuid"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
)

// Context carries the ambient state a single plan compilation needs: a
// cancellation-capable context.Context, a tracer, a logger, and the query id
// used to correlate spans and log lines across the Analyzer and Optimizer
// passes. It is the narrowed, execution-free counterpart of the teacher's
// sql.Context (ctx.Span, ctx.NewSubContext, WithCurrentDB in
// resolve_subqueries.go / analyzer_test.go).
type Context struct {
	context.Context
	QueryID uuid.UUID
	Tracer  opentracing.Tracer
	Logger  *logrus.Entry
}

// NewContext builds a Context around a parent context.Context, stamping a
// fresh query id and defaulting to the global tracer and a standalone
// logrus logger. Use WithTracer/WithLogger to override either.
func NewContext(parent context.Context) *Context {
	return &Context{
		Context: parent,
		QueryID: uuid.New(),
		Tracer:  opentracing.GlobalTracer(),
		Logger:  logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithTracer returns a copy of ctx using the given tracer.
func (c *Context) WithTracer(t opentracing.Tracer) *Context {
	cp := *c
	cp.Tracer = t
	return &cp
}

// WithLogger returns a copy of ctx using the given logger.
func (c *Context) WithLogger(l *logrus.Entry) *Context {
	cp := *c
	cp.Logger = l
	return &cp
}

// WithNewQueryID returns a copy of ctx stamped with a fresh query id,
// leaving its tracer and logger untouched. Used by compiler.CompileAll so
// concurrent compilations sharing one Catalog still get distinct ids to
// correlate their own spans and log lines by.
func (c *Context) WithNewQueryID() *Context {
	cp := *c
	cp.QueryID = uuid.New()
	return &cp
}

// Span starts a new tracing span named name, tagged with the query id, and
// returns it along with a Context carrying the span as its active one. The
// caller must call span.Finish(). Mirrors the teacher's ctx.Span(name)
// pattern used throughout sql/analyzer.
func (c *Context) Span(name string) (opentracing.Span, *Context) {
	span, goCtx := opentracing.StartSpanFromContextWithTracer(c.Context, c.Tracer, name)
	span.SetTag("query_id", c.QueryID.String())
	cp := *c
	cp.Context = goCtx
	return span, &cp
}

// NewSubContext returns a Context sharing this one's tracer, logger and
// query id but with its own cancellation scope, along with the cancel
// function (mirrors ctx.NewSubContext in the teacher's
// resolve_subqueries.go). The analyzer resolves Subquery nodes in the same
// pass as the enclosing plan and does not call it.
func (c *Context) NewSubContext() (*Context, context.CancelFunc) {
	sub, cancel := context.WithCancel(c.Context)
	cp := *c
	cp.Context = sub
	return &cp, cancel
}

// Log is shorthand for Logger.Debugf, mirroring the teacher's a.Log(...)
// helper used throughout sql/analyzer.
func (c *Context) Log(format string, args ...interface{}) {
	c.Logger.Debugf(format, args...)
}
