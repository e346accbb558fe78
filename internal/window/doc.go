// Package window implements the chunked boundary-seeking reader used
// for head/tail extraction on files of arbitrary size.
//
// The reader holds one fixed-size chunk buffer at a time plus the
// accumulated matched output, so memory stays bounded regardless of
// file size. Head scans forward, Tail seeks backward from the end;
// both stop the moment the requested line count is satisfied.
//
// Only 0x0A delimits lines. Binary content is handled byte-wise with
// no carriage-return normalization.
package window
