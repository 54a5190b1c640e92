package glterrain

// TerrainVertSrc samples the heightmap in the vertex shader so the whole
// terrain, at every LOD, reads from one shared height source: LOD only
// changes which indices are drawn, never what height a vertex resolves to.
//
// inPos and offset are both in heightmap sample space, not world space, so
// the heightmap UV lookup never has to know about xzScale; the conversion
// to world units happens once, after centering, for the final position.
const TerrainVertSrc = `
#version 410 core
layout (location = 0) in vec2 inPos;

uniform mat4 model;
uniform mat4 viewProj;
uniform vec2 offset;
uniform float xzScale;
uniform float yScale;
uniform float textureWidth;
uniform float textureHeight;
uniform sampler2D heightmapTexture;

out vec2 fragUV;

void main() {
    vec2 sampleXZ = inPos + offset;
    vec2 uv = sampleXZ / vec2(textureWidth, textureHeight);
    float height = texture(heightmapTexture, uv).r * 65535.0 * yScale;

    vec2 worldXZ = (sampleXZ - vec2(textureWidth, textureHeight) * 0.5) * xzScale;
    vec4 worldPos = model * vec4(worldXZ.x, height, worldXZ.y, 1.0);
    gl_Position = viewProj * worldPos;
    fragUV = uv;
}
`

// TerrainFragSrc tints each draw call by its LOD (for the LOD-debug
// visualization) and optionally modulates with an overlay texture sampled
// at the same heightmap UV the vertex shader already computed.
const TerrainFragSrc = `
#version 410 core
in vec2 fragUV;
out vec4 outColor;

uniform vec4 inColor;
uniform float doTexture;
uniform sampler2D overlayTexture;

void main() {
    vec4 base = inColor;
    if (doTexture > 0.5) {
        base *= texture(overlayTexture, fragUV);
    }
    outColor = base;
}
`
