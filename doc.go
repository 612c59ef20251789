/*
Package sinetable generates a single-quadrant sine table set for fixed-point
hardware and reads/writes it as address-prefixed hex records.

The first table contains the quantized values of sin(x) across the quadrant,
the second the differences between consecutive values, used for linear
interpolation between table entries.

Data Structure Documentation

Table

For N = Slices * PointsPerSlice indices, the value table holds N+1 samples,
the delta table N differences:

    value[i] = trunc(Scale * sin(Pi/2 * i / N))    for 0 <= i <= N
    delta[i] = value[i+1] - value[i]                for 0 <= i <  N

Only value[0..N-1] are emitted, value[N] contributes solely to the last delta.

Record file

A record file is a series of newline terminated records. Each record starts
with the '@' prefixed, 8-digit lowercase hex address of its first value,
followed by up to RecordSize space separated, zero padded, uppercase hex values.

    Record layout:
    +-----------------+-----+-------------+-----+-----+-------------+------+
    | @ address (hex) | ' ' | value 1 hex | ' ' | ... | value n hex | '\n' |
    +-----------------+-----+-------------+-----+-----+-------------+------+

    Example (Width: 4, RecordSize: 8):
    @00000000 0000 0019 0032 004B 0064 007D 0096 00AF

Compressed record files are wrapped in a snappy framed stream.
*/
package sinetable
