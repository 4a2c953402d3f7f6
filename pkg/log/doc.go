// Package log provides structured logging built on zerolog
package log
