// Package props is the prop-getter substrate for steer widgets: a
// Props bag of attributes and event handlers, ordered handler
// composition, and a merge that lets a consumer layer their own
// attributes and handlers over a widget's without either side's wiring
// being silently dropped.
package props
