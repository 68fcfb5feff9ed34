// Package align lines up analogous tokens of consecutive source lines.
//
// A block of token lines is parsed into bracket trees and matched level by
// level. Each level is aligned in one of two ways:
//
//   - keyed: every row is a comma separated list of `key: value` fields; the
//     column schema is the ordered union of the keys and values recurse;
//   - anchored: items whose signature pins their text (symbols, reserved words,
//     words shared by every row, bracket groups) are matched through a longest
//     common subsequence; the runs between anchors align token by token when
//     they have the same shape and collapse into one unpadded column otherwise.
//
// The resulting columns are laid out left to right. Padding is trailing
// spaces after the previous token only; token text and order never change.
package align
