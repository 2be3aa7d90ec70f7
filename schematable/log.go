// Copyright 2026 The schematable Authors
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

package schematable

import "github.com/sirupsen/logrus"

// logger is the package logger. Quiet by default; hosts that want engine
// diagnostics can swap in their own with SetLogger.
var logger = func() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}()

// SetLogger replaces the package logger. A nil logger is ignored.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		logger = l
	}
}
