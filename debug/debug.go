// edgeview - Constraint-based edge decorations for terminal views.
// Copyright (C) 2024 Tulir Asokan
//
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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package debug

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"
)

var RecoverPrettyPanic bool
var OnRecover func()

// Recover is deferred at the top of main. A panic that reaches it first
// runs OnRecover, which should restore the terminal. With RecoverPrettyPanic
// set, the trace is saved to a file and the process exits; otherwise the
// panic continues unwinding.
func Recover() {
	p := recover()
	if p == nil {
		return
	}
	if OnRecover != nil {
		OnRecover()
	}
	if !RecoverPrettyPanic {
		panic(p)
	}
	PrettyPanic(p)
}

const Oops = ` ____________
< Edge case! >
 ‾‾‾‾\‾‾‾‾‾‾‾
      \  +--------+
       \ |  x  x  |
         |   __   |
         +--------+`

// WriteTrace saves the panic value and the current stack to a file in the
// temp directory and returns the path of the file.
func WriteTrace(p any) (string, error) {
	traceFile := filepath.Join(os.TempDir(), fmt.Sprintf("edgedemo-panic-%s.txt", time.Now().Format("2006-01-02--15-04-05")))
	var buf bytes.Buffer
	_, _ = fmt.Fprintln(&buf, p)
	buf.Write(debug.Stack())
	return traceFile, os.WriteFile(traceFile, buf.Bytes(), 0600)
}

func PrettyPanic(p any) {
	fmt.Println(Oops)
	fmt.Println()
	fmt.Println("A fatal error has occurred.")
	fmt.Println()
	traceFile, err := WriteTrace(p)
	if err != nil {
		fmt.Println("Saving the stack trace to", traceFile, "failed:", err)
		fmt.Println("--------------------------------------------------------------------------------")
		fmt.Println(p)
		debug.PrintStack()
		fmt.Println("--------------------------------------------------------------------------------")
	} else {
		fmt.Println("The stack trace has been saved to", traceFile)
	}
	os.Exit(1)
}
