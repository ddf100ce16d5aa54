// Package dynarray provides Array[E], an ordered, mutable sequence backed by
// a single contiguous buffer that grows geometrically.
//
// An Array tracks two numbers:
//
//   - length (Size): the count of valid elements, stored at buffer positions [0, Size)
//   - capacity (Capacity): the size of the allocated buffer, always >= Size
//
// When an insertion would push the length past the capacity, the buffer is
// replaced by one of floor(GrowthFactor * Capacity) slots and the live
// elements are copied into its low end. Capacity never shrinks.
//
// Quick guidance
//
//   - Construct with New, NewWithGrowthFactor, From or Of.
//   - Indexed operations return an *IndexError (matches ErrOutOfBounds) instead of panicking.
//   - First, Last and RemoveFirst return an *EmptyError (matches ErrEmptyCollection) on an empty array.
//   - Map and Accumulate are package functions because methods cannot introduce type parameters.
//
// Some behaviors are kept on purpose and are easy to trip over:
//
//   - SubList(i, i) returns the single element at i, not an empty array.
//   - AddAll and AddSlice stop copying at the first nil element.
//   - Reject keeps the elements its predicate accepts, exactly like Select.
//   - RemoveLast on an empty array reports an out-of-bounds index (-1), while
//     RemoveFirst reports an empty collection.
//
// Array is not safe for concurrent use.
package dynarray
