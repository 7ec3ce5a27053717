package main

import (
	"fmt"
	"strconv"
	"strings"
)

// sizeList collects repeated -size WxH flags.
type sizeList [][2]int

func (l *sizeList) String() string {
	parts := make([]string, len(*l))
	for i, s := range *l {
		parts[i] = fmt.Sprintf("%dx%d", s[0], s[1])
	}
	return strings.Join(parts, ",")
}

func (l *sizeList) Set(value string) error {
	w, h, ok := strings.Cut(strings.ToLower(value), "x")
	if !ok {
		return fmt.Errorf("size %q: expected WxH", value)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return fmt.Errorf("size %q: bad width", value)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return fmt.Errorf("size %q: bad height", value)
	}
	*l = append(*l, [2]int{width, height})
	return nil
}

func parseInts(list string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("%q is not a positive integer", part)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return out, nil
}
