// Command rendermean averages the "Render time: <n>" lines a starfield
// session logs and prints a single timestamped summary line:
//
//	2026-08-25 14:03:07 245.81μs
//
// It reads the log from a file argument or, with no argument, stdin.
// A log with no matching lines reports a mean of 0.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"time"
)

var renderTimePattern = regexp.MustCompile(`Render time: (\d+)`)

func main() {
	var in io.Reader = os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	fmt.Println(report(time.Now(), meanRenderTime(in)))
}

func meanRenderTime(r io.Reader) float64 {
	scanner := bufio.NewScanner(r)
	var sum, count int64
	for scanner.Scan() {
		m := renderTimePattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		v, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

func report(now time.Time, mean float64) string {
	return fmt.Sprintf("%s %.2fμs", now.Format("2006-01-02 15:04:05"), mean)
}
