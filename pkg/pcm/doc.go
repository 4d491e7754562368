// ABOUTME: PCM helper package documentation
// ABOUTME: Sample layout utilities used across drivers and sources
// Package pcm provides little-endian sample packing, unpacking and
// range-conversion helpers for the formats the engine supports.
package pcm
