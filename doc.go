// Copyright 2024 The Cockroach Authors
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

// Package hoptable is a Go implementation of 16-way hopscotch hashing. See
// https://en.wikipedia.org/wiki/Hopscotch_hashing for background.
//
// # Hopscotch tables
//
// A hopscotch table is an open-addressed hash table that bounds every item
// to a fixed-size "neighborhood" of buckets starting at its hash-derived root
// bucket. Each bucket holds 16 slots; a lookup scans the root bucket first
// (virtually always a hit) and then, guided by a per-root record of
// per-distance occupancy counts (HopInfo), only the neighbor buckets known to
// hold an item rooted there.
// Insertion finds an empty slot anywhere forward of the root and, if it
// landed outside the neighborhood, "bubbles" it backward by repeatedly
// swapping with a mover that can shift forward without leaving its own
// neighborhood — until the hole lands inside the root's neighborhood or no
// mover exists, in which case the table grows and retries.
//
// This gives worst-case O(H) lookup and removal (H being 8 or 16, a small
// constant) and amortized O(1) insertion, at a high load factor (87.5%-97%),
// which is the main advantage over plain linear probing.
//
// # Implementation
//
// Like a Swiss table, each bucket carries a parallel array of 1-byte tags (a
// 7-bit hash fingerprint, top bit reserved as the empty sentinel) that lets a
// bucket be scanned for candidates with a single masked-compare pass instead
// of comparing every slot's value. Unlike a Swiss table, there is no
// tombstone state: removal decrements the root's HopInfo count directly,
// because the neighborhood invariant (not probe-chain continuation) is what
// keeps probes bounded.
//
// Tags and values are held in two parallel slices sized to (B+H) buckets of
// 16 slots, where B is the number of root buckets (always a power of two)
// and H is the neighborhood size. The trailing H buckets are padding that
// let the last root's neighborhood extend without wraparound. A third slice
// holds the HopInfo records, 16 count bytes for each of the B root buckets.
//
// This is a low-level structure: every operation takes an explicit hash and
// an equality predicate supplied by the caller. See the hashmap and hashset
// packages for a conventional keyed-map/keyed-set interface built on top.
package hoptable
