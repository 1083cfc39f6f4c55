// Package show renders tracker work items for inspection.
package show
