package raster

// HPrefilter applies a horizontal box filter of the given width to the
// w x h region at the start of pix. Each output pixel is the mean of
// itself and the kernel-1 pixels to its left. The rightmost kernel-1
// columns are expected to be blank on input; they receive the filter's
// tail. A kernel of 1 or less is a no-op.
func HPrefilter(pix []byte, w, h, stride, kernel int) {
	if kernel <= 1 {
		return
	}
	kernel = min(kernel, MaxKernel)

	var ring [MaxKernel]byte
	for j := 0; j < h; j++ {
		row := pix[j*stride : j*stride+w]
		boxFilter(row, 1, w, kernel, &ring)
	}
}

// VPrefilter is HPrefilter applied to columns: each output pixel is the
// mean of itself and the kernel-1 pixels above it.
func VPrefilter(pix []byte, w, h, stride, kernel int) {
	if kernel <= 1 {
		return
	}
	kernel = min(kernel, MaxKernel)

	var ring [MaxKernel]byte
	for i := 0; i < w; i++ {
		boxFilter(pix[i:], stride, h, kernel, &ring)
	}
}

// boxFilter filters n samples of line spaced step bytes apart.
func boxFilter(line []byte, step, n, kernel int, ring *[MaxKernel]byte) {
	const mask = MaxKernel - 1

	clear(ring[:])
	total := 0
	i := 0
	for ; i <= n-kernel; i++ {
		p := line[i*step]
		total += int(p) - int(ring[i&mask])
		ring[(i+kernel)&mask] = p
		line[i*step] = byte(total / kernel)
	}
	for ; i < n; i++ {
		total -= int(ring[i&mask])
		line[i*step] = byte(total / kernel)
	}
}
