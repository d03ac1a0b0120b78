// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package bitbuf

import "errors"

// ErrFrozen is returned by any Write* call made after CursorInit has
// produced a read cursor over the buffer. Writing to a buffer that has
// readers is a caller bug, but it is surfaced as an ordinary error
// rather than a panic so callers that want a hard failure can still
// route it through their own Config.Assert hook.
var ErrFrozen = errors.New("bitbuf: write after buffer was frozen by a read cursor")
