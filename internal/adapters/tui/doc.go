// Package tui is a terminal client for a pipeline board. It drives a
// ports.BoardService directly: the board it shows is a mounted session and
// every key press that changes the board is a drop on that session.
//
// The client never edits what it shows. After each drop and on every tick
// it re-reads the board view and drains notices, so optimistic moves,
// commits and rollbacks all appear the way the service reports them.
package tui
